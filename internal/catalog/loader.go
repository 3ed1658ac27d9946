// Package catalog loads the item seed file into the catalog.
package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/validation"
)

// ErrInvalidConfig is returned for a seed file that parses but breaks catalog rules
var ErrInvalidConfig = errors.New("invalid catalog configuration")

// File is the seed file layout
type File struct {
	Version     string  `yaml:"version"`
	Description string  `yaml:"description"`
	Items       []Entry `yaml:"items"`
}

// Entry is one item definition in the seed file
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	EffectType  string `yaml:"effect_type"`
	EffectValue int    `yaml:"effect_value"`
}

// ItemWriter is the slice of the inventory service the loader writes through
type ItemWriter interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, caller domain.Caller, def domain.ItemDefinition, initialQuantity int) (*domain.Item, error)
}

// SyncResult counts what a sync did
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
	// Unchanged is set when the file hash matched the last sync and nothing ran.
	Unchanged bool
}

// Loader reads, validates and applies catalog seed files
type Loader struct {
	schemaPath string
	schemas    validation.SchemaValidator
}

// NewLoader creates a Loader validating against the schema at schemaPath
func NewLoader(schemaPath string) *Loader {
	return &Loader{
		schemaPath: schemaPath,
		schemas:    validation.NewSchemaValidator(),
	}
}

// Load reads path, checks it against the schema and decodes it
func (l *Loader) Load(path string) (*File, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}
	file, err := l.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, data, nil
}

// Parse validates and decodes seed file contents
func (l *Loader) Parse(data []byte) (*File, error) {
	if err := l.schemas.ValidateYAML(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, l.schemaPath, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, err)
	}
	return &file, nil
}

// Definitions checks the semantic rules the schema cannot express and converts
// the entries to catalog definitions
func (l *Loader) Definitions(file *File) ([]domain.ItemDefinition, error) {
	if file == nil || len(file.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItems)
	}

	seen := make(map[string]bool, len(file.Items))
	defs := make([]domain.ItemDefinition, 0, len(file.Items))
	for i, entry := range file.Items {
		def, err := entry.definition()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidItemAtIndex, ErrInvalidConfig, i, entry.Name, err)
		}
		key := strings.ToLower(def.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateName, ErrInvalidConfig, def.Name)
		}
		seen[key] = true
		defs = append(defs, def)
	}
	return defs, nil
}

func (e Entry) definition() (domain.ItemDefinition, error) {
	itemType, err := domain.ParseItemType(e.Type)
	if err != nil {
		return domain.ItemDefinition{}, err
	}
	effect, err := domain.ParseEffectType(e.EffectType)
	if err != nil {
		return domain.ItemDefinition{}, err
	}
	return domain.ItemDefinition{
		Name:        e.Name,
		Description: e.Description,
		Type:        itemType,
		Effect:      effect,
		EffectValue: e.EffectValue,
	}.Normalize()
}

// Sync applies the seed file at path through writer. It is skipped when the
// file hash equals the one recorded by the previous sync.
func (l *Loader) Sync(ctx context.Context, path string, writer ItemWriter, meta repository.SyncMetadata) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	file, data, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	defs, err := l.Definitions(file)
	if err != nil {
		return nil, err
	}

	hash := fileHash(data)
	previous, err := meta.GetSyncHash(ctx, SyncKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSyncHashFailed, err)
	}
	if previous == hash {
		log.Info(LogMsgUnchanged, "path", path)
		return &SyncResult{Unchanged: true}, nil
	}

	existing, err := writer.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	byName := make(map[string]domain.Item, len(existing))
	for _, item := range existing {
		byName[item.Name] = item
	}

	system := domain.Caller{Role: domain.RoleAdmin}
	result := &SyncResult{}
	for _, def := range defs {
		current, ok := byName[def.Name]
		if ok && sameDefinition(current, def) {
			result.Skipped++
			continue
		}
		item, err := writer.CreateItem(ctx, system, def, 0)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDefineItemFailed, def.Name, err)
		}
		if ok {
			result.Updated++
			log.Info(LogMsgUpdatedItem, "name", item.Name, "id", item.ID)
		} else {
			result.Inserted++
			log.Info(LogMsgInsertedItem, "name", item.Name, "id", item.ID)
		}
	}

	if err := meta.SetSyncHash(ctx, SyncKey, hash); err != nil {
		log.Warn(LogMsgSetSyncHashFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}

func sameDefinition(item domain.Item, def domain.ItemDefinition) bool {
	return item.Description == def.Description &&
		item.Type == def.Type &&
		item.Effect == def.Effect &&
		item.EffectValue == def.EffectValue
}

func fileHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
