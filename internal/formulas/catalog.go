// Package formulas holds the built-in formula reference sheet. The catalog
// is static: no LLM call, no storage, available offline.
package formulas

import "strings"

// Formula is a single named formula. Formula is LaTeX source without
// delimiters, rendered in display mode.
type Formula struct {
	Name    string
	Formula string
}

// Category groups formulas under a subject heading.
type Category struct {
	Name  string
	Items []Formula
}

// catalog is the built-in formula sheet for the Vietnamese high school
// curriculum.
var catalog = []Category{
	{
		Name: "Đại số",
		Items: []Formula{
			{Name: "Hằng đẳng thức đáng nhớ", Formula: `(a+b)^2 = a^2 + 2ab + b^2`},
			{Name: "Công thức nghiệm PT bậc 2", Formula: `x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}`},
			{Name: "Logarit cơ bản", Formula: `\log_a(bc) = \log_ab + \log_ac`},
		},
	},
	{
		Name: "Lượng giác",
		Items: []Formula{
			{Name: "Hệ thức Pythagore", Formula: `\sin^2x + \cos^2x = 1`},
			{Name: "Công thức cộng", Formula: `\sin(a+b) = \sin a\cos b + \cos a \sin b`},
			{Name: "Công thức nhân đôi", Formula: `\cos 2x = 2\cos^2x - 1`},
		},
	},
	{
		Name: "Giải tích",
		Items: []Formula{
			{Name: "Đạo hàm x^n", Formula: `(x^n)' = n \cdot x^{n-1}`},
			{Name: "Nguyên hàm cơ bản", Formula: `\int x^n dx = \frac{x^{n+1}}{n+1} + C`},
			{Name: "Giới hạn vô cực", Formula: `\lim_{x \to 0} \frac{\sin x}{x} = 1`},
		},
	},
}

// All returns the full catalog.
func All() []Category {
	return Search("")
}

// Search filters the catalog case-insensitively: a formula matches when the
// query occurs in its name or LaTeX source. Categories with no matching
// formulas are omitted; an empty query returns everything.
func Search(query string) []Category {
	q := strings.ToLower(query)

	out := make([]Category, 0, len(catalog))
	for _, cat := range catalog {
		items := make([]Formula, 0, len(cat.Items))
		for _, f := range cat.Items {
			if q == "" ||
				strings.Contains(strings.ToLower(f.Name), q) ||
				strings.Contains(strings.ToLower(f.Formula), q) {
				items = append(items, f)
			}
		}
		if len(items) > 0 {
			out = append(out, Category{Name: cat.Name, Items: items})
		}
	}
	return out
}
