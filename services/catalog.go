package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"franchise-bot/models"
)

// categoryData is the static, bilingual metadata for one category: example
// phrases for the classification prompt, similarity keywords for the ranker,
// and display names for suggestion lists.
type categoryData struct {
	hints    string
	keywords []string
	nameEN   string
	nameES   string
}

var categoryTable = map[models.Category]categoryData{
	models.CategoryWhatIsRealtyPlus: {
		hints:    "qué es RealtyPlus, what is RealtyPlus, información sobre la empresa, company information",
		keywords: []string{"qué es", "what is", "información", "empresa", "company", "realtyplus"},
		nameEN:   "What is RealtyPlus?",
		nameES:   "¿Qué es RealtyPlus?",
	},
	models.CategoryCountriesOperatingIn: {
		hints:    "en qué países operan, where do you operate, dónde están, countries",
		keywords: []string{"países", "countries", "dónde", "where", "ubicación", "location", "operan"},
		nameEN:   "What countries do you operate in?",
		nameES:   "¿En qué países operan?",
	},
	models.CategoryFranchiseInclusions: {
		hints:    "qué incluye la franquicia, what is included, qué recibo, what do I get",
		keywords: []string{"incluye", "included", "qué recibo", "what do i get", "beneficios", "benefits"},
		nameEN:   "What does the franchise include?",
		nameES:   "¿Qué incluye la franquicia?",
	},
	models.CategoryFranchiseVsMaster: {
		hints:    "diferencia entre franquicia y master, difference between franchise and master",
		keywords: []string{"diferencia", "difference", "master", "franquicia vs"},
		nameEN:   "Difference between franchise and master franchise",
		nameES:   "Diferencia entre franquicia y master franquicia",
	},
	models.CategoryExperienceRequired: {
		hints:    "necesito experiencia, do I need experience, requisitos de experiencia",
		keywords: []string{"experiencia", "experience", "necesito", "requisitos"},
		nameEN:   "Real estate experience required",
		nameES:   "Experiencia en bienes raíces requerida",
	},
	models.CategoryStartAloneOrTeam: {
		hints:    "puedo empezar solo, can I start alone, necesito equipo, do I need a team",
		keywords: []string{"solo", "alone", "equipo", "team"},
		nameEN:   "Can I start alone or do I need a team?",
		nameES:   "¿Puedo empezar solo o necesito un equipo?",
	},
	models.CategoryOnboardingLaunchTime: {
		hints:    "cuánto tiempo para empezar, how long to start, tiempo de lanzamiento",
		keywords: []string{"cuánto tiempo", "how long", "tiempo", "launch", "empezar"},
		nameEN:   "Time to get started",
		nameES:   "Tiempo para empezar",
	},
	models.CategorySupportReceived: {
		hints:    "qué apoyo recibo, what support do I get, ayuda",
		keywords: []string{"apoyo", "support", "ayuda", "help"},
		nameEN:   "Support I will receive",
		nameES:   "Apoyo que recibiré",
	},
	models.CategoryOperateInternationally: {
		hints:    "puedo operar internacionalmente, can I work internationally, trabajo global",
		keywords: []string{"internacional", "international", "global"},
		nameEN:   "International operations",
		nameES:   "Operaciones internacionales",
	},
	models.CategoryStepsToGetStarted: {
		hints:    "cómo empezar, how to start, pasos para comenzar, steps to begin",
		keywords: []string{"cómo empezar", "how to start", "pasos", "steps", "comenzar"},
		nameEN:   "Steps to get started",
		nameES:   "Pasos para comenzar",
	},
	models.CategoryAreaExclusivity: {
		hints:    "exclusividad territorial, area exclusivity, territorio exclusivo",
		keywords: []string{"exclusividad", "exclusivity", "territorio", "territory"},
		nameEN:   "Area exclusivity",
		nameES:   "Exclusividad territorial",
	},
	models.CategoryMarketingAssistance: {
		hints:    "ayuda de marketing, marketing help, publicidad, advertising support",
		keywords: []string{"marketing", "publicidad", "advertising"},
		nameEN:   "Marketing assistance",
		nameES:   "Ayuda de marketing",
	},
	models.CategoryRecruitmentAssistance: {
		hints:    "ayuda para reclutar, recruitment help, contratar equipo",
		keywords: []string{"reclutar", "recruitment", "contratar", "hiring"},
		nameEN:   "Recruitment assistance",
		nameES:   "Ayuda de reclutamiento",
	},
	models.CategoryTechnologyTools: {
		hints:    "herramientas tecnológicas, technology tools, plataformas digitales",
		keywords: []string{"tecnología", "technology", "herramientas", "tools", "plataforma"},
		nameEN:   "Technology tools offered",
		nameES:   "Herramientas tecnológicas ofrecidas",
	},
	models.CategoryContactExpansionTeam: {
		hints:    "contactar, contact, hablar con alguien, speak with someone, agendar llamada, schedule call",
		keywords: []string{"contactar", "contact", "hablar", "llamada", "call", "reunión"},
		nameEN:   "Contact the expansion team",
		nameES:   "Contactar al equipo de expansión",
	},
	models.CategoryWhereCanIOpen: {
		hints:    "dónde puedo abrir, where can I open, ubicaciones disponibles",
		keywords: []string{"dónde puedo", "where can", "abrir", "open"},
		nameEN:   "Where can I open?",
		nameES:   "¿Dónde puedo abrir?",
	},
	models.CategoryWhyChooseRealtyPlus: {
		hints:    "por qué elegir RealtyPlus, why choose RealtyPlus, ventajas, benefits",
		keywords: []string{"por qué", "why", "elegir", "choose", "ventajas"},
		nameEN:   "Why choose RealtyPlus?",
		nameES:   "¿Por qué elegir RealtyPlus?",
	},
	models.CategoryReceiveBrochure: {
		hints:    "recibir documentos, receive documents, folleto, brochure, información",
		keywords: []string{"documentos", "documents", "folleto", "brochure"},
		nameEN:   "Receive documents/brochure",
		nameES:   "Recibir documentos/folleto",
	},
	models.CategoryTimeDedication: {
		hints:    "cuánto tiempo necesito dedicar, how much time required, dedicación",
		keywords: []string{"dedicación", "dedication", "tiempo dedicar"},
		nameEN:   "Time dedication required",
		nameES:   "Tiempo de dedicación requerido",
	},
	models.CategoryPhysicalOfficeNeed: {
		hints:    "necesito oficina física, do I need physical office, oficina",
		keywords: []string{"oficina", "office", "física", "physical"},
		nameEN:   "Physical office requirement",
		nameES:   "Requisito de oficina física",
	},
	models.CategoryTrainingForTeam: {
		hints:    "capacitación, training, entrenamiento, formación para el equipo",
		keywords: []string{"capacitación", "training", "entrenamiento", "formación"},
		nameEN:   "Training for the team",
		nameES:   "Capacitación para el equipo",
	},
	models.CategoryExpandMultipleCities: {
		hints:    "expandir a más ciudades, expand to multiple cities, varias ubicaciones",
		keywords: []string{"expandir", "expand", "ciudades", "cities"},
		nameEN:   "Expand to multiple cities",
		nameES:   "Expandir a múltiples ciudades",
	},
	models.CategoryVisitHeadquarters: {
		hints:    "visitar oficinas, visit headquarters, conocer la sede",
		keywords: []string{"visitar", "visit", "oficinas", "headquarters"},
		nameEN:   "Visit headquarters",
		nameES:   "Visitar la sede",
	},
	models.CategoryGrowBeyondSales: {
		hints:    "crecer más allá de ventas, grow beyond sales, otros servicios",
		keywords: []string{"crecer", "grow", "más allá", "beyond"},
		nameEN:   "Grow beyond sales",
		nameES:   "Crecer más allá de las ventas",
	},
	models.CategoryMultipleLanguagesReq: {
		hints:    "necesito hablar idiomas, need multiple languages, requisitos de idioma",
		keywords: []string{"idiomas", "languages"},
		nameEN:   "Multiple languages requirement",
		nameES:   "Requisito de múltiples idiomas",
	},
	models.CategoryMainRequirements: {
		hints:    "requisitos principales, main requirements, qué necesito para unirme",
		keywords: []string{"requisitos", "requirements", "unirme", "join"},
		nameEN:   "Main requirements to join",
		nameES:   "Requisitos principales para unirse",
	},
	models.CategoryContactFranchisees: {
		hints:    "contactar otros franquiciados, contact other franchisees, testimonios",
		keywords: []string{"franquiciados", "franchisees", "testimonios"},
		nameEN:   "Contact other franchisees",
		nameES:   "Contactar a otros franquiciados",
	},
	models.CategoryInternationalSystem: {
		hints:    "cómo funciona el sistema internacional, how international system works",
		keywords: []string{"sistema", "system", "funciona", "works"},
		nameEN:   "How the international system works",
		nameES:   "Cómo funciona el sistema internacional",
	},
	models.CategoryGrowQuickly: {
		hints:    "puedo crecer rápido, can I grow quickly, crecimiento rápido",
		keywords: []string{"rápido", "quickly", "rápidamente"},
		nameEN:   "Possibility of growing quickly",
		nameES:   "Posibilidad de crecer rápidamente",
	},
}

// Catalog is the closed set of answerable categories. It is immutable once
// built; a reload builds a fresh instance and swaps it in whole. A category
// is a member only if the loaded source supplied a canned response for it.
type Catalog struct {
	members   []models.Category
	responses map[models.Category]string
}

// NewCatalog validates the loaded id -> response map against the category
// enum and builds a catalog preserving canonical order. Unknown ids are
// rejected here rather than surfacing later as silent lookup misses.
func NewCatalog(responses map[string]string) (*Catalog, error) {
	for id := range responses {
		if _, ok := categoryTable[models.Category(id)]; !ok {
			return nil, fmt.Errorf("unknown category %q in catalog source", id)
		}
	}

	c := &Catalog{
		responses: make(map[models.Category]string, len(responses)),
	}
	for _, cat := range models.AllCategories {
		if text, ok := responses[string(cat)]; ok {
			c.members = append(c.members, cat)
			c.responses[cat] = text
		}
	}
	return c, nil
}

// EmptyCatalog is the degraded catalog used when the source cannot be loaded.
// Every question then falls through to the default unmatched-question path.
func EmptyCatalog() *Catalog {
	return &Catalog{responses: map[models.Category]string{}}
}

// LoadCatalog reads the catalog source file and builds the catalog. Any
// failure (missing file, bad JSON, unknown id) degrades to an empty catalog
// so the bot still starts.
func LoadCatalog(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Catalog source not found, starting with empty catalog", "path", path, "error", err)
		return EmptyCatalog()
	}

	var responses map[string]string
	if err := json.Unmarshal(data, &responses); err != nil {
		slog.Error("Failed to parse catalog source, starting with empty catalog", "path", path, "error", err)
		return EmptyCatalog()
	}

	catalog, err := NewCatalog(responses)
	if err != nil {
		slog.Error("Invalid catalog source, starting with empty catalog", "path", path, "error", err)
		return EmptyCatalog()
	}

	slog.Info("Catalog loaded", "path", path, "categories", catalog.Size())
	return catalog
}

// Members returns the catalog categories in canonical order.
func (c *Catalog) Members() []models.Category {
	return c.members
}

// Contains reports whether cat is a member of this catalog.
func (c *Catalog) Contains(cat models.Category) bool {
	_, ok := c.responses[cat]
	return ok
}

// Response returns the canned base-language response for a member category.
func (c *Catalog) Response(cat models.Category) (string, bool) {
	text, ok := c.responses[cat]
	return text, ok
}

// Size returns the number of member categories.
func (c *Catalog) Size() int {
	return len(c.members)
}

// Hints returns the bilingual example phrases used in the classification
// prompt.
func (c *Catalog) Hints(cat models.Category) string {
	return categoryTable[cat].hints
}

// Keywords returns the bilingual similarity keywords for a category.
func (c *Catalog) Keywords(cat models.Category) []string {
	return categoryTable[cat].keywords
}

// DisplayName returns the localized friendly name for a category, falling
// back to the raw identifier for anything outside the table.
func (c *Catalog) DisplayName(cat models.Category, lang models.Language) string {
	data, ok := categoryTable[cat]
	if !ok {
		return string(cat)
	}
	if lang == models.LanguageSpanish {
		return data.nameES
	}
	return data.nameEN
}
