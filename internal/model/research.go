package model

// Research field keys, in schema order. These are the JSON keys of
// CompanyResearchOutput and the property names of the model output schema.
const (
	FieldCompanyName            = "companyName"
	FieldIndustry               = "industry"
	FieldTargetCustomers        = "targetCustomers"
	FieldTargetJobTitles        = "targetJobTitles"
	FieldCompanySize            = "companySize"
	FieldHeadquartersLocation   = "headquartersLocation"
	FieldProductDescription     = "productDescription"
	FieldCoreDeliverables       = "coreDeliverables"
	FieldValueProposition       = "valueProposition"
	FieldPricing                = "pricing"
	FieldUniqueDifferentiator   = "uniqueDifferentiator"
	FieldTopCompetitors         = "topCompetitors"
	FieldMarketProblem          = "marketProblem"
	FieldCustomerTransformation = "customerTransformation"
	FieldCommonObjections       = "commonObjections"
	FieldSalesCycleLength       = "salesCycleLength"
	FieldBrandPositioning       = "brandPositioning"
	FieldTestimonialQuote       = "testimonialQuote"
	FieldCaseStudiesURL         = "caseStudiesUrl"
	FieldPricingURL             = "pricingUrl"
	FieldDemoURL                = "demoUrl"
)

// ResearchField describes one attribute of CompanyResearchOutput.
type ResearchField struct {
	Key         string
	Description string
}

// ResearchFields lists every researched attribute in schema order.
var ResearchFields = []ResearchField{
	{FieldCompanyName, "The company's official name as shown on its website."},
	{FieldIndustry, "The industry or vertical the company operates in."},
	{FieldTargetCustomers, "Who the company sells to: customer segments, company types, or personas."},
	{FieldTargetJobTitles, "Job titles of buyers or users the company explicitly targets."},
	{FieldCompanySize, "Employee count or size description, quoted from a source."},
	{FieldHeadquartersLocation, "City and country of the company's headquarters."},
	{FieldProductDescription, "What the product or service does."},
	{FieldCoreDeliverables, "The main features, modules, or deliverables customers receive."},
	{FieldValueProposition, "The primary benefit the company promises its customers."},
	{FieldPricing, "Published prices, plans, or pricing model."},
	{FieldUniqueDifferentiator, "What the company claims sets it apart from alternatives."},
	{FieldTopCompetitors, "Named competitors or alternatives."},
	{FieldMarketProblem, "The problem the company says its customers face."},
	{FieldCustomerTransformation, "The outcome or after-state customers achieve."},
	{FieldCommonObjections, "Objections or concerns addressed in FAQs or sales copy."},
	{FieldSalesCycleLength, "Typical sales cycle or onboarding duration."},
	{FieldBrandPositioning, "How the company positions its brand: tone, category, tagline."},
	{FieldTestimonialQuote, "A verbatim customer testimonial quote."},
	{FieldCaseStudiesURL, "URL of the case studies or customer stories page."},
	{FieldPricingURL, "URL of the pricing page."},
	{FieldDemoURL, "URL to book a demo or start a trial."},
}

// CompanyResearchOutput is the schema-constrained research document. Every
// key is always serialized; an absent field encodes as null.
type CompanyResearchOutput struct {
	CompanyName            *ExtractionField `json:"companyName"`
	Industry               *ExtractionField `json:"industry"`
	TargetCustomers        *ExtractionField `json:"targetCustomers"`
	TargetJobTitles        *ExtractionField `json:"targetJobTitles"`
	CompanySize            *ExtractionField `json:"companySize"`
	HeadquartersLocation   *ExtractionField `json:"headquartersLocation"`
	ProductDescription     *ExtractionField `json:"productDescription"`
	CoreDeliverables       *ExtractionField `json:"coreDeliverables"`
	ValueProposition       *ExtractionField `json:"valueProposition"`
	Pricing                *ExtractionField `json:"pricing"`
	UniqueDifferentiator   *ExtractionField `json:"uniqueDifferentiator"`
	TopCompetitors         *ExtractionField `json:"topCompetitors"`
	MarketProblem          *ExtractionField `json:"marketProblem"`
	CustomerTransformation *ExtractionField `json:"customerTransformation"`
	CommonObjections       *ExtractionField `json:"commonObjections"`
	SalesCycleLength       *ExtractionField `json:"salesCycleLength"`
	BrandPositioning       *ExtractionField `json:"brandPositioning"`
	TestimonialQuote       *ExtractionField `json:"testimonialQuote"`
	CaseStudiesURL         *ExtractionField `json:"caseStudiesUrl"`
	PricingURL             *ExtractionField `json:"pricingUrl"`
	DemoURL                *ExtractionField `json:"demoUrl"`
}

// Slot returns the address of the field stored under key, or nil for an
// unknown key. It lets callers walk the document generically.
func (o *CompanyResearchOutput) Slot(key string) **ExtractionField {
	switch key {
	case FieldCompanyName:
		return &o.CompanyName
	case FieldIndustry:
		return &o.Industry
	case FieldTargetCustomers:
		return &o.TargetCustomers
	case FieldTargetJobTitles:
		return &o.TargetJobTitles
	case FieldCompanySize:
		return &o.CompanySize
	case FieldHeadquartersLocation:
		return &o.HeadquartersLocation
	case FieldProductDescription:
		return &o.ProductDescription
	case FieldCoreDeliverables:
		return &o.CoreDeliverables
	case FieldValueProposition:
		return &o.ValueProposition
	case FieldPricing:
		return &o.Pricing
	case FieldUniqueDifferentiator:
		return &o.UniqueDifferentiator
	case FieldTopCompetitors:
		return &o.TopCompetitors
	case FieldMarketProblem:
		return &o.MarketProblem
	case FieldCustomerTransformation:
		return &o.CustomerTransformation
	case FieldCommonObjections:
		return &o.CommonObjections
	case FieldSalesCycleLength:
		return &o.SalesCycleLength
	case FieldBrandPositioning:
		return &o.BrandPositioning
	case FieldTestimonialQuote:
		return &o.TestimonialQuote
	case FieldCaseStudiesURL:
		return &o.CaseStudiesURL
	case FieldPricingURL:
		return &o.PricingURL
	case FieldDemoURL:
		return &o.DemoURL
	default:
		return nil
	}
}

// Get returns the field stored under key.
func (o *CompanyResearchOutput) Get(key string) *ExtractionField {
	if o == nil {
		return nil
	}
	if p := o.Slot(key); p != nil {
		return *p
	}
	return nil
}

// Clone returns a deep copy of o.
func (o *CompanyResearchOutput) Clone() *CompanyResearchOutput {
	if o == nil {
		return nil
	}
	out := &CompanyResearchOutput{}
	for _, f := range ResearchFields {
		*out.Slot(f.Key) = o.Get(f.Key).Clone()
	}
	return out
}

// PopulatedCount returns how many fields carry a value.
func (o *CompanyResearchOutput) PopulatedCount() int {
	n := 0
	for _, f := range ResearchFields {
		if o.Get(f.Key).HasValue() {
			n++
		}
	}
	return n
}
