package memory

import (
	"context"
	"math"
	"sync"

	"github.com/yoockh/devprofiles/internal/models"
	"github.com/yoockh/devprofiles/internal/utils"
)

type ProfileRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetByID(ctx context.Context, id int) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Update(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id int) error
	Len() int
}

// profileRepo keeps profiles in insertion order. Lookups are linear scans;
// the data set is small and lives entirely in memory.
type profileRepo struct {
	mu    sync.RWMutex
	items []models.Profile
}

// NewProfileRepo returns a store preloaded with copies of seed.
func NewProfileRepo(seed []models.Profile) ProfileRepository {
	items := make([]models.Profile, 0, len(seed))
	for _, p := range seed {
		items = append(items, p.Clone())
	}
	return &profileRepo{items: items}
}

func (r *profileRepo) List(ctx context.Context) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Profile, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id int) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, utils.ErrNotFound
	}
	p := r.items[i].Clone()
	return &p, nil
}

// Create appends p. A zero p.ID is replaced with max(id)+1 under the same
// lock as the append, so concurrent id-less creates never collide.
func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		hi := r.maxID()
		if hi == math.MaxInt {
			return utils.ErrIDExhausted
		}
		p.ID = hi + 1
	} else if r.indexOf(p.ID) >= 0 {
		return utils.ErrConflict
	}
	r.items = append(r.items, p.Clone())
	return nil
}

func (r *profileRepo) Update(ctx context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return utils.ErrNotFound
	}
	r.items[i] = p.Clone()
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return utils.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// maxID must be called with mu held.
func (r *profileRepo) maxID() int {
	hi := 0
	for _, p := range r.items {
		if p.ID > hi {
			hi = p.ID
		}
	}
	return hi
}

func (r *profileRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// indexOf must be called with mu held.
func (r *profileRepo) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
