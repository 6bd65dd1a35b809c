package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"southbound-app/internal/domain/cities"
	"southbound-app/internal/infra/blob"
)

var ErrCityNotFound = errors.New("city not found")

const (
	StatusMigrated = "migrated"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"

	wouldMigrate = "(would migrate)"
)

type Params struct {
	CityID string
	DryRun bool
}

type FieldUpdate struct {
	Field string `json:"field"`
	Index int    `json:"index"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type Detail struct {
	CityID  string        `json:"cityId"`
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	Updates []FieldUpdate `json:"updates,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type Report struct {
	Total    int      `json:"total"`
	Migrated int      `json:"migrated"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Details  []Detail `json:"details"`
}

func (r *Report) add(d Detail) {
	switch d.Status {
	case StatusMigrated:
		r.Migrated++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
	r.Details = append(r.Details, d)
}

// Migrator rewrites every external image URL on city documents into a
// freshly ingested blob URL. Re-running it is cheap and safe: stored URLs
// are terminal, so a fully migrated city is reported as skipped with zero
// writes. There is no checkpointing; a crashed run simply restarts and
// skips past what it already did.
type Migrator struct {
	DB       *gorm.DB
	Ingestor ImageIngestor
	BlobHost string
	Compress bool
}

// Run migrates one city (Params.CityID) or every city in the store. A
// failure on one city never aborts the rest of a bulk run.
func (m *Migrator) Run(ctx context.Context, p Params) (*Report, error) {
	if p.CityID != "" {
		var city cities.City
		err := m.DB.First(&city, "id = ?", p.CityID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load city %s: %w", p.CityID, err)
		}
		report := &Report{Total: 1}
		report.add(m.migrateCity(ctx, &city, p.DryRun))
		return report, nil
	}

	var all []cities.City
	if err := m.DB.Order("name ASC").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}

	// Cities run strictly one after another; only the elements of a single
	// list field are in flight together. This bounds concurrent outbound
	// fetches and keeps the report order deterministic.
	report := &Report{Total: len(all)}
	for i := range all {
		report.add(m.migrateCity(ctx, &all[i], p.DryRun))
	}
	return report, nil
}

type listField struct {
	name     string
	category string
	values   *datatypes.JSONSlice[string]
}

func (m *Migrator) migrateCity(ctx context.Context, city *cities.City, dryRun bool) Detail {
	d := Detail{CityID: city.ID, Name: city.Name, Status: StatusSkipped}
	slug := Slugify(city.Name)

	dirty := false
	var failures []string

	// The scalar cover image goes through the same path as a one-element list.
	scalar, updates, errs := m.migrateList(ctx, []string{city.ImageUrl}, "imageUrl", "cities", slug, dryRun)
	d.Updates = append(d.Updates, updates...)
	failures = append(failures, errs...)
	if len(updates) > 0 {
		dirty = true
		if !dryRun {
			city.ImageUrl = scalar[0]
		}
	}

	for _, l := range []listField{
		{"imageUrls", "cities", &city.ImageUrls},
		{"highlightImages", "highlights", &city.HighlightImages},
		{"activityImages", "activities", &city.ActivityImages},
		{"accommodationImages", "accommodations", &city.AccommodationImages},
	} {
		out, updates, errs := m.migrateList(ctx, *l.values, l.name, l.category, slug, dryRun)
		d.Updates = append(d.Updates, updates...)
		failures = append(failures, errs...)
		if len(updates) > 0 {
			dirty = true
			if !dryRun {
				*l.values = out
			}
		}
	}

	if len(failures) > 0 {
		d.Error = strings.Join(failures, "; ")
	}

	switch {
	case dirty && dryRun:
		d.Status = StatusMigrated
	case dirty:
		if err := m.DB.Save(city).Error; err != nil {
			d.Status = StatusFailed
			d.Error = fmt.Sprintf("persist city: %v", err)
			return d
		}
		d.Status = StatusMigrated
	case len(failures) > 0:
		d.Status = StatusFailed
	}
	return d
}

// migrateList ingests every external URL in values and returns the rewritten
// list. The output always has the same length and order as the input: an
// element whose ingestion fails keeps its original URL, so a partial failure
// can never shrink or corrupt a field array.
func (m *Migrator) migrateList(ctx context.Context, values []string, field, category, slug string, dryRun bool) ([]string, []FieldUpdate, []string) {
	out := make([]string, len(values))
	copy(out, values)

	var updates []FieldUpdate

	if dryRun {
		for i, raw := range values {
			if Classify(raw, m.BlobHost) == External {
				updates = append(updates, FieldUpdate{Field: field, Index: i, From: raw, To: wouldMigrate})
			}
		}
		return out, updates, nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)
	for i, raw := range values {
		if Classify(raw, m.BlobHost) != External {
			continue
		}
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			newURL, err := m.ingestOne(ctx, raw, category, slug)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s[%d]: %v", field, i, err))
				log.Printf("migrate-images: %s[%d] (%s): %v", field, i, raw, err)
				return
			}
			out[i] = newURL
			updates = append(updates, FieldUpdate{Field: field, Index: i, From: raw, To: newURL})
		}(i, raw)
	}
	wg.Wait()

	// Outcomes are recombined by original index; completion order is noise.
	sort.Slice(updates, func(a, b int) bool { return updates[a].Index < updates[b].Index })
	return out, updates, errs
}

func (m *Migrator) ingestOne(ctx context.Context, rawURL, category, slug string) (string, error) {
	// The slug alone can collide across cities (and across elements of one
	// list), so the hint carries the generated timestamp+token suffix. The
	// extension follows the source so the key still matches the bytes when
	// compression passes the original through.
	hint := fmt.Sprintf("%s-%s", slug, blob.GenerateName(sourceExt(rawURL)))
	res, err := m.Ingestor.Ingest(ctx, Source{RemoteURL: rawURL}, Options{
		Category: category,
		NameHint: hint,
		Compress: m.Compress,
	})
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// sourceExt picks the blob extension from the source URL's path, falling back
// to .jpg for anything unrecognized.
func sourceExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}
	switch ext := strings.ToLower(path.Ext(u.Path)); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}
