package models

// Category identifies one topic from the closed franchise-support catalog.
// CategoryOther is the sentinel for "no match"; it is never a catalog member.
type Category string

const (
	CategoryWhatIsRealtyPlus       Category = "WHAT_IS_REALTYPLUS"
	CategoryCountriesOperatingIn   Category = "COUNTRIES_OPERATING_IN"
	CategoryFranchiseInclusions    Category = "FRANCHISE_INCLUSIONS"
	CategoryFranchiseVsMaster      Category = "FRANCHISE_VS_MASTER"
	CategoryExperienceRequired     Category = "REAL_ESTATE_EXPERIENCE_REQ"
	CategoryStartAloneOrTeam       Category = "START_ALONE_OR_TEAM"
	CategoryOnboardingLaunchTime   Category = "ONBOARDING_LAUNCH_TIME"
	CategorySupportReceived        Category = "SUPPORT_RECEIVED"
	CategoryOperateInternationally Category = "OPERATE_INTERNATIONALLY"
	CategoryStepsToGetStarted      Category = "STEPS_TO_GET_STARTED"
	CategoryAreaExclusivity        Category = "AREA_EXCLUSIVITY"
	CategoryMarketingAssistance    Category = "MARKETING_ASSISTANCE"
	CategoryRecruitmentAssistance  Category = "RECRUITMENT_ASSISTANCE"
	CategoryTechnologyTools        Category = "TECHNOLOGY_TOOLS_OFFERED"
	CategoryContactExpansionTeam   Category = "CONTACT_EXPANSION_TEAM"
	CategoryWhereCanIOpen          Category = "WHERE_CAN_I_OPEN"
	CategoryWhyChooseRealtyPlus    Category = "WHY_CHOOSE_REALTYPLUS"
	CategoryReceiveBrochure        Category = "RECEIVE_DOCUMENTS_BROCHURE"
	CategoryTimeDedication         Category = "TIME_DEDICATION_REQUIRED"
	CategoryPhysicalOfficeNeed     Category = "PHYSICAL_OFFICE_NEED"
	CategoryTrainingForTeam        Category = "TRAINING_FOR_TEAM"
	CategoryExpandMultipleCities   Category = "EXPAND_TO_MULTIPLE_CITIES"
	CategoryVisitHeadquarters      Category = "VISIT_HEADQUARTERS"
	CategoryGrowBeyondSales        Category = "GROW_BEYOND_SALES"
	CategoryMultipleLanguagesReq   Category = "MULTIPLE_LANGUAGES_REQ"
	CategoryMainRequirements       Category = "MAIN_REQUIREMENTS_JOIN"
	CategoryContactFranchisees     Category = "CONTACT_OTHER_FRANCHISEES"
	CategoryInternationalSystem    Category = "HOW_INTERNATIONAL_SYSTEM_WORKS"
	CategoryGrowQuickly            Category = "GROW_QUICKLY_POSSIBLE"
	CategoryOther                  Category = "OTHER"
)

// AllCategories lists every concrete category in canonical catalog order.
// The similarity ranker relies on this order for tie-breaking, so it must
// stay stable.
var AllCategories = []Category{
	CategoryWhatIsRealtyPlus,
	CategoryCountriesOperatingIn,
	CategoryFranchiseInclusions,
	CategoryFranchiseVsMaster,
	CategoryExperienceRequired,
	CategoryStartAloneOrTeam,
	CategoryOnboardingLaunchTime,
	CategorySupportReceived,
	CategoryOperateInternationally,
	CategoryStepsToGetStarted,
	CategoryAreaExclusivity,
	CategoryMarketingAssistance,
	CategoryRecruitmentAssistance,
	CategoryTechnologyTools,
	CategoryContactExpansionTeam,
	CategoryWhereCanIOpen,
	CategoryWhyChooseRealtyPlus,
	CategoryReceiveBrochure,
	CategoryTimeDedication,
	CategoryPhysicalOfficeNeed,
	CategoryTrainingForTeam,
	CategoryExpandMultipleCities,
	CategoryVisitHeadquarters,
	CategoryGrowBeyondSales,
	CategoryMultipleLanguagesReq,
	CategoryMainRequirements,
	CategoryContactFranchisees,
	CategoryInternationalSystem,
	CategoryGrowQuickly,
}
