// Package snapshot exports every user and hobby as one JSON document to
// object storage.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/storage"
)

const keyLayout = "20060102T150405Z"

// Source lists the records to export.
type Source interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListHobbies(ctx context.Context) ([]domain.Hobby, error)
}

// Document is the exported JSON shape.
type Document struct {
	TakenAt time.Time     `json:"takenAt"`
	Users   []userRecord  `json:"users"`
	Hobbies []hobbyRecord `json:"hobbies"`
}

type userRecord struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Hobbies []string `json:"hobbies"`
}

type hobbyRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PassionLevel int    `json:"passionLevel"`
	Passion      string `json:"passion"`
	Year         int64  `json:"year"`
}

type Options struct {
	Bucket    string
	KeyPrefix string
	// Keep is the number of newest snapshots retained after an export. Zero
	// keeps all of them.
	Keep   int
	Logger logrus.FieldLogger
	Now    func() time.Time
}

type Exporter struct {
	source  Source
	storage storage.Service
	opts    Options
}

func NewExporter(source Source, store storage.Service, opts Options) *Exporter {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{source: source, storage: store, opts: opts}
}

// Build reads the source and assembles a snapshot document.
func (e *Exporter) Build(ctx context.Context) (Document, error) {
	users, err := e.source.ListUsers(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("list users: %w", err)
	}
	hobbies, err := e.source.ListHobbies(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("list hobbies: %w", err)
	}

	doc := Document{
		TakenAt: e.opts.Now().UTC(),
		Users:   make([]userRecord, 0, len(users)),
		Hobbies: make([]hobbyRecord, 0, len(hobbies)),
	}
	for _, u := range users {
		ids := u.Hobbies
		if ids == nil {
			ids = []string{}
		}
		doc.Users = append(doc.Users, userRecord{ID: u.ID, Name: u.Name, Hobbies: ids})
	}
	for _, h := range hobbies {
		symbol, err := domain.PassionSymbol(h.PassionLevel)
		if err != nil {
			return Document{}, fmt.Errorf("hobby %s: %w", h.ID, err)
		}
		doc.Hobbies = append(doc.Hobbies, hobbyRecord{
			ID:           h.ID,
			Name:         h.Name,
			PassionLevel: int(h.PassionLevel),
			Passion:      symbol,
			Year:         h.Year,
		})
	}
	return doc, nil
}

// Export uploads a new snapshot and prunes old ones. It returns the location
// of the uploaded object.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	doc, err := e.Build(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := e.key(doc.TakenAt)
	location, err := e.storage.PutObject(ctx, e.opts.Bucket, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", err
	}
	e.opts.Logger.WithFields(logrus.Fields{
		"location": location,
		"users":    len(doc.Users),
		"hobbies":  len(doc.Hobbies),
	}).Info("snapshot uploaded")

	if err := e.prune(ctx); err != nil {
		return location, err
	}
	return location, nil
}

func (e *Exporter) key(at time.Time) string {
	return path.Join(strings.Trim(e.opts.KeyPrefix, "/"), at.Format(keyLayout)+".json")
}

// prune deletes all but the newest Keep snapshots. Keys sort by time.
func (e *Exporter) prune(ctx context.Context) error {
	if e.opts.Keep <= 0 {
		return nil
	}

	prefix := strings.Trim(e.opts.KeyPrefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	objects, err := e.storage.ListObjects(ctx, e.opts.Bucket, prefix)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		if strings.HasSuffix(obj.Key, ".json") {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) <= e.opts.Keep {
		return nil
	}
	sort.Strings(keys)

	for _, key := range keys[:len(keys)-e.opts.Keep] {
		if err := e.storage.DeletePrefix(ctx, e.opts.Bucket, key); err != nil {
			return fmt.Errorf("delete snapshot %s: %w", key, err)
		}
		e.opts.Logger.WithField("key", key).Debug("snapshot pruned")
	}
	return nil
}
