package service

import (
	"sync"
	"time"

	"github.com/opygoal/nextride-api/internal/domain/entity"
)

// CompanyService holds the single company profile used on every rendered
// document. The profile is kept in memory with copy-on-write semantics:
// readers get a value copy, updates swap the whole record under the lock, so
// a render never observes a half-applied update.
type CompanyService struct {
	mu      sync.RWMutex
	profile entity.CompanyProfile
}

// NewCompanyService creates a company service seeded with the defaults.
func NewCompanyService() *CompanyService {
	return &CompanyService{profile: entity.DefaultCompanyProfile()}
}

// Get returns a copy of the current profile.
func (s *CompanyService) Get() entity.CompanyProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update applies a partial patch and returns the resulting profile. Fields
// the patch leaves nil keep their current value.
func (s *CompanyService) Update(patch entity.CompanyProfilePatch) entity.CompanyProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = s.profile.ApplyPartial(patch, time.Now().UTC())
	return s.profile
}
