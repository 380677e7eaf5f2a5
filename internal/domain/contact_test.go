package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]domain.Category{
		"professional":  domain.CategoryProfessional,
		"professional ": domain.CategoryProfessional,
		"personal":      domain.CategoryPersonal,
		"educational":   domain.CategoryEducational,
		"Personal":      domain.CategoryPersonal,
		"EDUCATIONAL":   domain.CategoryEducational,
		" personal ":    domain.CategoryPersonal,
		"":              domain.CategoryProfessional,
		"spam":          domain.CategoryProfessional,
	}

	for input, want := range cases {
		assert.Equal(t, want, domain.NormalizeCategory(input), "input %q", input)
	}
}
