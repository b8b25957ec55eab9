package model

// CompanySize is a fixed headcount tier used by the onboarding wizard.
type CompanySize string

const (
	CompanySizeSolo    CompanySize = "solo"
	CompanySize1To10   CompanySize = "1-10"
	CompanySize11To50  CompanySize = "11-50"
	CompanySize51To200 CompanySize = "51-200"
	CompanySize201To1K CompanySize = "201-1000"
	CompanySizeOver1K  CompanySize = "1000+"
	CompanySizeUnknown CompanySize = ""
)

// OnboardingFormData is the wizard's target shape. A nil section was not
// seeded; an empty string inside a section means the field was not seeded.
type OnboardingFormData struct {
	BusinessBasics    *BusinessBasics    `json:"businessBasics,omitempty" yaml:"businessBasics,omitempty"`
	ICP               *ICP               `json:"icp,omitempty" yaml:"icp,omitempty"`
	ProductOffer      *ProductOffer      `json:"productOffer,omitempty" yaml:"productOffer,omitempty"`
	MarketCompetition *MarketCompetition `json:"marketCompetition,omitempty" yaml:"marketCompetition,omitempty"`
	CustomerJourney   *CustomerJourney   `json:"customerJourney,omitempty" yaml:"customerJourney,omitempty"`
	BrandPositioning  *BrandPositioning  `json:"brandPositioning,omitempty" yaml:"brandPositioning,omitempty"`
	AssetsProof       *AssetsProof       `json:"assetsProof,omitempty" yaml:"assetsProof,omitempty"`
}

// BusinessBasics holds company identity fields.
type BusinessBasics struct {
	BusinessName         string `json:"businessName,omitempty" yaml:"businessName,omitempty"`
	HeadquartersLocation string `json:"headquartersLocation,omitempty" yaml:"headquartersLocation,omitempty"`
}

// ICP describes the ideal customer profile.
type ICP struct {
	PrimaryICPDescription string      `json:"primaryIcpDescription,omitempty" yaml:"primaryIcpDescription,omitempty"`
	IndustryVertical      string      `json:"industryVertical,omitempty" yaml:"industryVertical,omitempty"`
	JobTitles             string      `json:"jobTitles,omitempty" yaml:"jobTitles,omitempty"`
	CompanySize           CompanySize `json:"companySize,omitempty" yaml:"companySize,omitempty"`
}

// ProductOffer describes what is sold and for how much.
type ProductOffer struct {
	ProductDescription string `json:"productDescription,omitempty" yaml:"productDescription,omitempty"`
	CoreDeliverables   string `json:"coreDeliverables,omitempty" yaml:"coreDeliverables,omitempty"`
	ValueProp          string `json:"valueProp,omitempty" yaml:"valueProp,omitempty"`
	OfferPrice         string `json:"offerPrice,omitempty" yaml:"offerPrice,omitempty"`
}

// MarketCompetition describes the competitive landscape.
type MarketCompetition struct {
	TopCompetitors string `json:"topCompetitors,omitempty" yaml:"topCompetitors,omitempty"`
	UniqueEdge     string `json:"uniqueEdge,omitempty" yaml:"uniqueEdge,omitempty"`
	MarketProblem  string `json:"marketProblem,omitempty" yaml:"marketProblem,omitempty"`
}

// CustomerJourney describes how customers buy and what they get.
type CustomerJourney struct {
	SituationAfter   string `json:"situationAfter,omitempty" yaml:"situationAfter,omitempty"`
	CommonObjections string `json:"commonObjections,omitempty" yaml:"commonObjections,omitempty"`
	SalesCycleLength string `json:"salesCycleLength,omitempty" yaml:"salesCycleLength,omitempty"`
}

// BrandPositioning holds brand voice fields.
type BrandPositioning struct {
	BrandPositioning string `json:"brandPositioning,omitempty" yaml:"brandPositioning,omitempty"`
}

// AssetsProof holds links and social proof.
type AssetsProof struct {
	TestimonialQuote string `json:"testimonialQuote,omitempty" yaml:"testimonialQuote,omitempty"`
	CaseStudiesURL   string `json:"caseStudiesUrl,omitempty" yaml:"caseStudiesUrl,omitempty"`
	PricingURL       string `json:"pricingUrl,omitempty" yaml:"pricingUrl,omitempty"`
	DemoURL          string `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty"`
}
