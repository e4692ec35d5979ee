package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/validators"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/vault"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

// memberFields are the record keys owned by models.FamilyMember. An update
// rewrites these and keeps every other key of the stored record.
var memberFields = []string{
	"id", "name", "relation", "gender",
	"birthDate", "birthPlace", "deathDate", "deathPlace",
	"occupation", "notes", "parentIds", "spouseIds",
}

type familyService struct {
	vault     vault.Store
	ids       IDGenerator
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.Mutex
	records models.RecordCollection // nil while locked
}

// NewFamilyService constructs a [FamilyService] over v.
func NewFamilyService(v vault.Store, ids IDGenerator, log *logger.Logger) FamilyService {
	return &familyService{
		vault:     v,
		ids:       ids,
		validator: validators.NewFamilyMemberValidator(),
		logger:    log,
	}
}

func (s *familyService) State(ctx context.Context) (State, error) {
	s.mu.Lock()
	unlocked := s.records != nil
	s.mu.Unlock()

	if unlocked {
		return StateUnlocked, nil
	}

	exists, err := s.vault.Exists(ctx)
	if err != nil {
		return StateNoVault, fmt.Errorf("check vault: %w", err)
	}
	if exists {
		return StateLocked, nil
	}
	return StateNoVault, nil
}

func (s *familyService) Create(ctx context.Context, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.vault.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check vault: %w", err)
	}
	if exists {
		return ErrVaultExists
	}

	empty := models.RecordCollection{}
	if err = s.vault.Seal(ctx, empty, passphrase); err != nil {
		return fmt.Errorf("create vault: %w", err)
	}
	s.records = empty

	s.logger.Info().Str("func", "familyService.Create").Msg("new vault created")
	return nil
}

func (s *familyService) Unlock(ctx context.Context, passphrase string) error {
	records, err := s.vault.Unlock(ctx, passphrase)
	if err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.logger.Info().Str("func", "familyService.Unlock").Int("members", len(records)).Msg("vault unlocked")
	return nil
}

func (s *familyService) Members() ([]models.FamilyMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		return nil, ErrLocked
	}

	members := make([]models.FamilyMember, 0, len(s.records))
	for i, r := range s.records {
		m, err := models.FamilyMemberFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidMember, i, err)
		}
		members = append(members, m)
	}
	return members, nil
}

func (s *familyService) AddMember(ctx context.Context, m models.FamilyMember, passphrase string) (models.FamilyMember, error) {
	added, err := s.ImportMembers(ctx, []models.FamilyMember{m}, passphrase)
	if err != nil {
		return models.FamilyMember{}, err
	}
	return added[0], nil
}

func (s *familyService) ImportMembers(ctx context.Context, members []models.FamilyMember, passphrase string) ([]models.FamilyMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		return nil, ErrLocked
	}

	next := s.records.Clone()
	taken := make(map[string]bool, len(next)+len(members))
	for _, r := range next {
		taken[recordID(r)] = true
	}

	added := make([]models.FamilyMember, 0, len(members))
	for _, m := range members {
		m.Name = strings.TrimSpace(m.Name)
		if m.ID == "" {
			m.ID = s.ids.Generate()
		}
		if err := s.validator.Validate(ctx, m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMember, err)
		}
		if taken[m.ID] {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicateMember, m.ID)
		}
		taken[m.ID] = true

		r, err := m.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMember, err)
		}
		next = append(next, r)
		added = append(added, m)
	}

	if err := s.commit(ctx, next, passphrase); err != nil {
		return nil, err
	}

	s.logger.Info().Str("func", "familyService.ImportMembers").Int("added", len(added)).Msg("members added")
	return added, nil
}

func (s *familyService) UpdateMember(ctx context.Context, m models.FamilyMember, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		return ErrLocked
	}
	m.Name = strings.TrimSpace(m.Name)
	if err := s.validator.Validate(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMember, err)
	}

	i := s.indexOf(m.ID)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrMemberNotFound, m.ID)
	}

	r, err := m.ToRecord()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMember, err)
	}

	next := s.records.Clone()
	for _, k := range memberFields {
		delete(next[i], k)
	}
	for k, v := range r {
		next[i][k] = v
	}

	return s.commit(ctx, next, passphrase)
}

func (s *familyService) RemoveMember(ctx context.Context, id string, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		return ErrLocked
	}

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrMemberNotFound, id)
	}

	next := s.records.Clone()
	next = append(next[:i], next[i+1:]...)

	return s.commit(ctx, next, passphrase)
}

func (s *familyService) Lock() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

func (s *familyService) Forget(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.vault.Reset(ctx); err != nil {
		return fmt.Errorf("reset vault: %w", err)
	}
	s.records = nil

	s.logger.Info().Str("func", "familyService.Forget").Msg("vault forgotten")
	return nil
}

// commit seals next and makes it the loaded tree. On error the loaded tree
// is untouched. Callers hold s.mu.
func (s *familyService) commit(ctx context.Context, next models.RecordCollection, passphrase string) error {
	if err := s.vault.Seal(ctx, next, passphrase); err != nil {
		s.logger.Err(err).Str("func", "familyService.commit").Msg("seal failed, change rolled back")
		return fmt.Errorf("save vault: %w", err)
	}
	s.records = next
	return nil
}

func (s *familyService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range s.records {
		if recordID(r) == id {
			return i
		}
	}
	return -1
}

// recordID reads the "id" field of a record the same way Members decodes
// it, so a numeric id written by another client matches its decimal text.
func recordID(r models.Record) string {
	switch v := r["id"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
