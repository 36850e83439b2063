package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/devprofiles/internal/cache"
	"github.com/yoockh/devprofiles/internal/models"
	"github.com/yoockh/devprofiles/internal/repositories/memory"
	"github.com/yoockh/devprofiles/internal/utils"
)

type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id int) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, id int, patch models.ProfilePatch) (*models.Profile, error)
	Delete(ctx context.Context, id int) error
}

type ProfileServiceOptions struct {
	// Cache is optional. Failures talking to it never fail a request.
	Cache    cache.Cache
	CacheTTL time.Duration
	// CacheNamespace scopes cache keys to one store. Empty means a fresh
	// random namespace, so entries never outlive the in-memory store that
	// wrote them or leak between instances sharing a Redis.
	CacheNamespace string
	Logger         *logrus.Logger
}

type profileService struct {
	profiles memory.ProfileRepository
	cache    cache.Cache
	ttl      time.Duration
	ns       string
	log      *logrus.Logger

	// mu orders cache fills after store reads against mutations followed
	// by cache writes, so a reader cannot re-cache a record that a
	// concurrent Update or Delete has already replaced.
	mu sync.RWMutex
}

func NewProfileService(profiles memory.ProfileRepository, opts ProfileServiceOptions) ProfileService {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.CacheNamespace == "" {
		opts.CacheNamespace = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &profileService{
		profiles: profiles,
		cache:    opts.Cache,
		ttl:      opts.CacheTTL,
		ns:       opts.CacheNamespace,
		log:      opts.Logger,
	}
}

func (s *profileService) cacheKey(id int) string {
	return "profile:" + s.ns + ":" + strconv.Itoa(id)
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	const op = "ProfileService.List"

	out, err := s.profiles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}
	return out, nil
}

func (s *profileService) Get(ctx context.Context, id int) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if s.cache != nil {
		var cached models.Profile
		hit, err := s.cache.GetJSON(ctx, s.cacheKey(id), &cached)
		if err != nil {
			s.log.WithError(err).WithField("profile_id", id).Warn("profile cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, utils.MsgProfileNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	s.store(ctx, p)
	return p, nil
}

func (s *profileService) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	const op = "ProfileService.Create"

	if p == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile is required", nil)
	}
	if p.ID < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id must be positive", nil)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// a zero id is assigned by the store
	if err := s.profiles.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, utils.ErrConflict):
			return nil, utils.E(utils.CodeConflict, op, "profile with id "+strconv.Itoa(p.ID)+" already exists", err)
		case errors.Is(err, utils.ErrIDExhausted):
			return nil, utils.E(utils.CodeConflict, op, "no profile ids left; supply an unused id", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create profile", err)
	}
	s.store(ctx, p)
	s.log.WithField("profile_id", p.ID).Debug("profile created")
	return p, nil
}

func (s *profileService) Update(ctx context.Context, id int, patch models.ProfilePatch) (*models.Profile, error) {
	const op = "ProfileService.Update"

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, utils.MsgProfileNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}

	patch.Apply(existing)

	if err := s.profiles.Update(ctx, existing); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, utils.MsgProfileNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	s.store(ctx, existing)
	return existing, nil
}

func (s *profileService) Delete(ctx context.Context, id int) error {
	const op = "ProfileService.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, utils.MsgProfileNotFound, err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// store writes p through to the cache, falling back to dropping the key
// so a failed write never leaves the previous value behind.
func (s *profileService) store(ctx context.Context, p *models.Profile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, s.cacheKey(p.ID), p, s.ttl); err != nil {
		s.log.WithError(err).WithField("profile_id", p.ID).Warn("profile cache write failed")
		s.invalidate(ctx, p.ID)
	}
}

func (s *profileService) invalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cacheKey(id)); err != nil {
		s.log.WithError(err).WithField("profile_id", id).Warn("profile cache invalidation failed")
	}
}
