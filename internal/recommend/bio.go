package recommend

import "github.com/Zachkp/portfolio/internal/content"

// BioVariant names the page a bio is shown on.
type BioVariant string

const (
	VariantAbout     BioVariant = "about"
	VariantCaseStudy BioVariant = "case-study"
	VariantBlog      BioVariant = "blog"
	VariantHome      BioVariant = "home"
)

// BioTypeFor maps a page variant to the bio length it shows. Unknown
// variants get the medium bio.
func BioTypeFor(v BioVariant) content.BioType {
	switch v {
	case VariantAbout:
		return content.BioLong
	case VariantBlog:
		return content.BioShort
	default:
		return content.BioMedium
	}
}

// ContextualBio picks the bio for a page. A bio matching both the variant's
// type and focusArea wins; otherwise the first bio of that type. The result
// is false only when the catalog has no bio of the type.
func (e *Engine) ContextualBio(variant BioVariant, focusArea string) (content.Bio, bool) {
	bios := e.source.Current().BiosByType(BioTypeFor(variant))
	if focusArea != "" {
		for _, b := range bios {
			if b.FocusArea == focusArea {
				return b, true
			}
		}
	}
	if len(bios) == 0 {
		return content.Bio{}, false
	}
	return bios[0], true
}
