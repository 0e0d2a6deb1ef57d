package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opygoal/nextride-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestCompanyService_SeededWithDefaults(t *testing.T) {
	s := NewCompanyService()

	profile := s.Get()
	assert.Equal(t, entity.DefaultCompanyProfile().Name, profile.Name)
	assert.NotEmpty(t, profile.BankDetails)
}

func TestCompanyService_PartialUpdate(t *testing.T) {
	s := NewCompanyService()
	before := s.Get()

	updated := s.Update(entity.CompanyProfilePatch{
		Name:    strPtr("Oakwood Charters"),
		Tagline: strPtr(""),
	})

	assert.Equal(t, "Oakwood Charters", updated.Name)
	assert.Empty(t, updated.Tagline)
	// untouched fields survive
	assert.Equal(t, before.Address, updated.Address)
	assert.Equal(t, before.BankDetails, updated.BankDetails)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestCompanyService_GetReturnsCopy(t *testing.T) {
	s := NewCompanyService()

	p := s.Get()
	p.Name = "mutated locally"

	assert.NotEqual(t, "mutated locally", s.Get().Name)
}

func TestCompanyService_ConcurrentAccess(t *testing.T) {
	s := NewCompanyService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Update(entity.CompanyProfilePatch{Name: strPtr(fmt.Sprintf("Company %d", n))})
		}(i)
		go func() {
			defer wg.Done()
			p := s.Get()
			// a reader never sees a cleared name
			assert.NotEmpty(t, p.Name)
		}()
	}
	wg.Wait()
}
