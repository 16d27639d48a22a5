package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/holiday"
	"github.com/jaeyoonkim/gisu/internal/repository"
)

type holidayService struct {
	cache  repository.HolidayCacheRepo
	dir    string
	client *holiday.Client
}

// NewHolidayService builds the layered holiday source. A nil client is
// valid and means no API key is configured; years not covered by the
// cache or the file directory then resolve to an empty list.
func NewHolidayService(cache repository.HolidayCacheRepo, dir string, client *holiday.Client) HolidayService {
	return &holidayService{cache: cache, dir: dir, client: client}
}

func (s *holidayService) Year(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if payload, err := s.cache.Get(ctx, year); err == nil && payload != nil {
		var list []holiday.Holiday
		if err := json.Unmarshal(payload, &list); err == nil {
			return list, nil
		}
		// A corrupt cache row falls through and gets overwritten below.
	}

	list, err := holiday.ReadYearFile(s.dir, year)
	if err != nil {
		return nil, fmt.Errorf("reading holiday file for %d: %w", year, err)
	}
	if list != nil {
		s.store(ctx, year, list)
		return list, nil
	}

	if s.client == nil {
		return nil, nil
	}
	list, err = s.client.FetchYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays for %d: %w", year, err)
	}
	s.store(ctx, year, list)
	return list, nil
}

// store caches a year best effort; a cache write failure never blocks
// the caller, the source is consulted again next time.
func (s *holidayService) store(ctx context.Context, year int, list []holiday.Holiday) {
	payload, err := json.Marshal(list)
	if err != nil {
		return
	}
	_ = s.cache.Put(ctx, year, payload)
}
