package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"backend/models"
)

var ErrMedicationNotFound = errors.New("medication not found")

type MedicationService struct {
	store *firestore.Client
}

func NewMedicationService(store *firestore.Client) *MedicationService {
	return &MedicationService{store: store}
}

func (s *MedicationService) col(userID string) *firestore.CollectionRef {
	return s.store.Collection("users").Doc(userID).Collection("medications")
}

// MedicationInput accepts the loosely-typed payloads the form sends:
// stock and threshold may arrive as numbers, numeric strings or empty.
type MedicationInput struct {
	Name              string           `json:"name" binding:"required"`
	Description       string           `json:"description"`
	Strength          string           `json:"strength"`
	Form              string           `json:"form"`
	Shape             string           `json:"shape"`
	Color             string           `json:"color"`
	Stock             any              `json:"stock"`
	LowStockThreshold any              `json:"low_stock_threshold"`
	Instructions      string           `json:"instructions"`
	Reminder          *models.Reminder `json:"reminder"`
}

// NormalizeMedication coerces the numeric fields and enforces the
// reminder invariants. Invalid stock collapses to 0 and an invalid
// threshold is dropped; neither rejects the request.
func NormalizeMedication(input MedicationInput) models.Medication {
	med := models.Medication{
		Name:         input.Name,
		Description:  input.Description,
		Strength:     input.Strength,
		Form:         input.Form,
		Shape:        input.Shape,
		Color:        input.Color,
		Stock:        CoerceNonNegativeInt(input.Stock),
		Instructions: input.Instructions,
		Reminder:     normalizeReminder(input.Reminder),
	}
	if n, ok := coerceOptionalNonNegative(input.LowStockThreshold); ok {
		med.LowStockThreshold = &n
	}
	return med
}

// CoerceNonNegativeInt accepts numbers and numeric strings; anything
// else, including negatives, collapses to zero.
func CoerceNonNegativeInt(v any) int {
	n, ok := coerceInt(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

func coerceOptionalNonNegative(v any) (int, bool) {
	n, ok := coerceInt(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64: // JSON numbers decode as float64
		return int(n), true
	case int:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func normalizeReminder(r *models.Reminder) *models.Reminder {
	if r == nil {
		return nil
	}
	out := *r
	if out.Frequency != models.FrequencyEveryXDays {
		out.IntervalDays = 0
	}
	if out.Frequency != models.FrequencySpecificDays {
		out.SpecificDays = nil
	}
	return &out
}

func (s *MedicationService) Add(ctx context.Context, userID string, input MedicationInput) (*models.Medication, error) {
	med := NormalizeMedication(input)
	med.CreatedAt = time.Now()

	doc := s.col(userID).NewDoc()
	if _, err := doc.Set(ctx, med); err != nil {
		return nil, err
	}
	med.ID = doc.ID
	s.checkLowStock(ctx, userID, &med)
	return &med, nil
}

// Update replaces the whole document, keeping only its creation time.
func (s *MedicationService) Update(ctx context.Context, userID, id string, input MedicationInput) (*models.Medication, error) {
	doc := s.col(userID).Doc(id)
	snap, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}

	med := NormalizeMedication(input)
	med.CreatedAt = normalizeCreatedAt(snap.Data()["createdAt"], time.Now())
	if _, err := doc.Set(ctx, med); err != nil {
		return nil, err
	}
	med.ID = id
	s.checkLowStock(ctx, userID, &med)
	return &med, nil
}

func (s *MedicationService) Delete(ctx context.Context, userID, id string) error {
	_, err := s.col(userID).Doc(id).Delete(ctx)
	return err
}

func (s *MedicationService) List(ctx context.Context, userID string) ([]models.Medication, error) {
	iter := s.col(userID).OrderBy("name", firestore.Asc).Documents(ctx)
	meds := []models.Medication{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var med models.Medication
		if err := doc.DataTo(&med); err != nil {
			return nil, err
		}
		med.ID = doc.Ref.ID
		meds = append(meds, med)
	}
	return meds, nil
}

// checkLowStock emits a warning when the stock reaches the configured
// threshold. Alert delivery is best-effort and never fails the write.
func (s *MedicationService) checkLowStock(ctx context.Context, userID string, med *models.Medication) {
	if med.LowStockThreshold == nil || med.Stock > *med.LowStockThreshold {
		return
	}
	EmitAlert(ctx, userID, "warning",
		fmt.Sprintf("Stock bas pour %s : %d restant(s)", med.Name, med.Stock))
}
