package pipeline

import "github.com/ammar944/AI-GOS-sub011/internal/model"

// MapToFormData projects a research document, partial or final, onto the
// onboarding form. A section is present only when at least one of its
// source fields has a value; fields without a value stay empty. The
// function is pure, so it can run on every streamed partial.
func MapToFormData(out *model.CompanyResearchOutput) *model.OnboardingFormData {
	form := &model.OnboardingFormData{}
	if out == nil {
		return form
	}

	if anyValue(out.CompanyName, out.HeadquartersLocation) {
		form.BusinessBasics = &model.BusinessBasics{
			BusinessName:         out.CompanyName.Text(),
			HeadquartersLocation: out.HeadquartersLocation.Text(),
		}
	}

	if anyValue(out.TargetCustomers, out.Industry, out.TargetJobTitles, out.CompanySize) {
		form.ICP = &model.ICP{
			PrimaryICPDescription: out.TargetCustomers.Text(),
			IndustryVertical:      out.Industry.Text(),
			JobTitles:             out.TargetJobTitles.Text(),
			CompanySize:           BucketCompanySize(out.CompanySize.Text()),
		}
	}

	if anyValue(out.ProductDescription, out.CoreDeliverables, out.ValueProposition, out.Pricing) {
		form.ProductOffer = &model.ProductOffer{
			ProductDescription: out.ProductDescription.Text(),
			CoreDeliverables:   out.CoreDeliverables.Text(),
			ValueProp:          out.ValueProposition.Text(),
			OfferPrice:         out.Pricing.Text(),
		}
	}

	if anyValue(out.TopCompetitors, out.UniqueDifferentiator, out.MarketProblem) {
		form.MarketCompetition = &model.MarketCompetition{
			TopCompetitors: out.TopCompetitors.Text(),
			UniqueEdge:     out.UniqueDifferentiator.Text(),
			MarketProblem:  out.MarketProblem.Text(),
		}
	}

	if anyValue(out.CustomerTransformation, out.CommonObjections, out.SalesCycleLength) {
		form.CustomerJourney = &model.CustomerJourney{
			SituationAfter:   out.CustomerTransformation.Text(),
			CommonObjections: out.CommonObjections.Text(),
			SalesCycleLength: out.SalesCycleLength.Text(),
		}
	}

	if anyValue(out.BrandPositioning) {
		form.BrandPositioning = &model.BrandPositioning{
			BrandPositioning: out.BrandPositioning.Text(),
		}
	}

	if anyValue(out.TestimonialQuote, out.CaseStudiesURL, out.PricingURL, out.DemoURL) {
		form.AssetsProof = &model.AssetsProof{
			TestimonialQuote: out.TestimonialQuote.Text(),
			CaseStudiesURL:   out.CaseStudiesURL.Text(),
			PricingURL:       out.PricingURL.Text(),
			DemoURL:          out.DemoURL.Text(),
		}
	}

	return form
}

func anyValue(fields ...*model.ExtractionField) bool {
	for _, f := range fields {
		if f.HasValue() {
			return true
		}
	}
	return false
}
