package employee

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Service struct {
	repo employee.Repository
	ttl  time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	officers  []employee.Employee
	fetchedAt time.Time
}

func NewService(repo employee.Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

// ActiveFieldOfficers returns the active field officers, name-sorted. The
// result is cached; concurrent refreshes are deduplicated so a burst of
// requests causes one upstream round trip.
func (s *Service) ActiveFieldOfficers(ctx context.Context) ([]employee.FieldOfficerResponse, error) {
	s.mu.RLock()
	fresh := time.Since(s.fetchedAt) < s.ttl && s.officers != nil
	officers := s.officers
	s.mu.RUnlock()

	if !fresh {
		refreshed, err, _ := s.group.Do("field-officers", func() (interface{}, error) {
			return s.fetchActiveFieldOfficers(ctx)
		})
		if err != nil {
			return nil, err
		}
		officers = refreshed.([]employee.Employee)
	}

	resp := make([]employee.FieldOfficerResponse, 0, len(officers))
	for _, officer := range officers {
		resp = append(resp, employee.FieldOfficerResponse{
			ID:       officer.ID,
			FullName: officer.FullName(),
			City:     officer.City,
			State:    officer.State,
		})
	}
	return resp, nil
}

// fetchActiveFieldOfficers joins the full and inactive directories fetched
// concurrently: active field officers are everyone with the role minus the
// inactive id set.
func (s *Service) fetchActiveFieldOfficers(ctx context.Context) ([]employee.Employee, error) {
	var all, inactive []employee.Employee

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.repo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		inactive, err = s.repo.GetAllInactive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, employee.ErrDirectoryEmpty
	}

	inactiveIDs := make(map[string]struct{}, len(inactive))
	for _, emp := range inactive {
		inactiveIDs[emp.ID] = struct{}{}
	}

	officers := make([]employee.Employee, 0)
	for _, emp := range all {
		if emp.Role != employee.RoleFieldOfficer {
			continue
		}
		if _, gone := inactiveIDs[emp.ID]; gone {
			continue
		}
		officers = append(officers, emp)
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(officers, func(i, j int) bool {
		return coll.CompareString(officers[i].FullName(), officers[j].FullName()) < 0
	})

	s.mu.Lock()
	s.officers = officers
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return officers, nil
}

// Evict drops the cached directory once it has outlived its TTL. Run
// periodically so stale data does not linger between requests.
func (s *Service) Evict(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.officers != nil && time.Since(s.fetchedAt) >= s.ttl {
		s.officers = nil
	}
	return nil
}
