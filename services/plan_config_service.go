package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"backend/config"
	"backend/models"
)

const dateLayout = "2006-01-02"

// MaxPlanDays bounds duration-mode plans; the HTTP edge clamps larger
// inputs down to it.
const MaxPlanDays = 365

// DefaultResearchSummary seeds the research text the first time a user
// loads the form.
const DefaultResearchSummary = "Plan alimentaire pour diabète de type 2 et cholestérol : " +
	"privilégier les aliments à index glycémique bas, les fibres solubles (avoine, légumineuses) " +
	"et les bonnes graisses (oméga-3, huile d'olive). Limiter les sucres rapides, les produits " +
	"transformés et les graisses saturées. Répartir les glucides sur la journée en cinq prises : " +
	"petit-déjeuner, collation, déjeuner, collation, dîner."

var (
	ErrNoLikedFoods      = errors.New("no available foods: at least one food must not be avoided")
	ErrStartDateInPast   = errors.New("plan start date is in the past")
	ErrInvalidPlanPeriod = errors.New("plan period is invalid")
	ErrSnapshotNotFound  = errors.New("form settings snapshot not found")
)

func formSettingsDoc(userID string) *firestore.DocumentRef {
	return config.Store.Collection("users").Doc(userID).Collection("formSettings").Doc("default")
}

func historyCol(userID string) *firestore.CollectionRef {
	return config.Store.Collection("users").Doc(userID).Collection("formSettingsHistory")
}

// DefaultConfiguration is the form state used before the user has saved
// anything: a one-day plan starting tomorrow, in date-range mode. Both
// modes are pre-filled so switching never starts from blank fields.
func DefaultConfiguration(now time.Time) models.PlanConfiguration {
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)
	return models.PlanConfiguration{
		ResearchSummary:   DefaultResearchSummary,
		SelectionMode:     models.SelectionModeDates,
		StartDate:         tomorrow,
		EndDate:           tomorrow,
		DurationDays:      1,
		DurationStartDate: tomorrow,
	}
}

// LoadConfiguration returns the user's default form settings, seeding
// and persisting the defaults on first use. An unreachable store
// degrades to the in-memory defaults; the error is returned alongside
// them so the caller can surface a non-fatal notification instead of
// failing the load.
func LoadConfiguration(ctx context.Context, userID string) (models.SavedFormSettings, error) {
	defaults := models.SavedFormSettings{
		Config:    DefaultConfiguration(time.Now()),
		CreatedAt: time.Now(),
	}

	snap, err := formSettingsDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			if _, err := formSettingsDoc(userID).Set(ctx, defaults); err != nil {
				return defaults, err
			}
			return defaults, nil
		}
		return defaults, err
	}

	var settings models.SavedFormSettings
	if err := snap.DataTo(&settings); err != nil {
		return defaults, err
	}
	settings.ID = snap.Ref.ID
	return settings, nil
}

// PlanDurationDays computes the inclusive day count of a date range. It
// reports false when either date fails to parse or the end precedes the
// start; the count is never negative.
func PlanDurationDays(startDate, endDate string) (int, bool) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, false
	}
	if end.Before(start) {
		return 0, false
	}
	return int(end.Sub(start).Hours()/24) + 1, true
}

// EndDateForDuration derives the last plan day from a start date and a
// day count, valid only for 1 to MaxPlanDays days.
func EndDateForDuration(startDate string, days int) (string, bool) {
	if days < 1 || days > MaxPlanDays {
		return "", false
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", false
	}
	return start.AddDate(0, 0, days-1).Format(dateLayout), true
}

// FormatPlanDuration renders a day count for the generator prompt.
func FormatPlanDuration(days int) string {
	if days == 1 {
		return "1 jour"
	}
	return fmt.Sprintf("%d jours", days)
}

// effectivePlan resolves the active selection mode into a start date
// and a day count.
func effectivePlan(cfg models.PlanConfiguration) (string, int, bool) {
	switch cfg.SelectionMode {
	case models.SelectionModeDuration:
		if _, ok := EndDateForDuration(cfg.DurationStartDate, cfg.DurationDays); !ok {
			return "", 0, false
		}
		return cfg.DurationStartDate, cfg.DurationDays, true
	case models.SelectionModeDates:
		days, ok := PlanDurationDays(cfg.StartDate, cfg.EndDate)
		if !ok {
			return "", 0, false
		}
		return cfg.StartDate, days, true
	}
	return "", 0, false
}

// AssembleGeneratorInput turns the form state and the merged food list
// into a generation request. It fails with a validation error when no
// food is left available, when the effective start date is already
// past, or when neither mode yields a valid plan period; no remote call
// should be made in any of those cases.
func AssembleGeneratorInput(cfg models.PlanConfiguration, categories []models.FoodCategory, now time.Time) (*GeneratorInput, error) {
	start, days, ok := effectivePlan(cfg)
	if !ok {
		return nil, ErrInvalidPlanPeriod
	}

	startDay, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, ErrInvalidPlanPeriod
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDay.Before(today) {
		return nil, ErrStartDateInPast
	}

	var liked, avoided []string
	for _, cat := range categories {
		for _, item := range cat.Items {
			line := item.Name + " " + item.GlycemicIndex
			if a := item.Preference.Annotation(); a != "" {
				line += " " + a
			}
			if item.Preference.Avoided() {
				avoided = append(avoided, line)
			} else {
				liked = append(liked, line)
			}
		}
	}
	if len(liked) == 0 {
		return nil, ErrNoLikedFoods
	}

	return &GeneratorInput{
		AvailableFoods:          strings.Join(liked, "\n"),
		FoodsToAvoid:            strings.Join(avoided, "\n"),
		DiabeticResearchSummary: cfg.ResearchSummary,
		PlanDuration:            FormatPlanDuration(days),
		PlanName:                cfg.PlanName,
	}, nil
}

// SaveSnapshot stores the configuration under a new history entry and
// makes the same payload the new auto-load default.
func SaveSnapshot(ctx context.Context, userID, name string, cfg models.PlanConfiguration) (*models.SavedFormSettings, error) {
	doc := historyCol(userID).NewDoc()
	snapshot := models.SavedFormSettings{
		Name:      name,
		Config:    cfg,
		CreatedAt: time.Now(),
	}
	if _, err := doc.Set(ctx, snapshot); err != nil {
		return nil, err
	}
	snapshot.ID = doc.ID

	def := snapshot
	def.SnapshotID = doc.ID
	if _, err := formSettingsDoc(userID).Set(ctx, def); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListSnapshots returns the saved history, newest first.
func ListSnapshots(ctx context.Context, userID string) ([]models.SavedFormSettings, error) {
	iter := historyCol(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	snapshots := []models.SavedFormSettings{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var s models.SavedFormSettings
		if err := doc.DataTo(&s); err != nil {
			return nil, err
		}
		s.ID = doc.Ref.ID
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// LoadSnapshot restores a saved history entry.
func LoadSnapshot(ctx context.Context, userID, id string) (*models.SavedFormSettings, error) {
	snap, err := historyCol(userID).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	var s models.SavedFormSettings
	if err := snap.DataTo(&s); err != nil {
		return nil, err
	}
	s.ID = snap.Ref.ID
	return &s, nil
}

// DeleteSnapshot removes a history entry. When the entry is the one
// the default settings were saved from, the default document is reset
// so the next load starts from defaults again.
func DeleteSnapshot(ctx context.Context, userID, id string) error {
	if _, err := historyCol(userID).Doc(id).Delete(ctx); err != nil {
		return err
	}

	snap, err := formSettingsDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return err
	}
	var settings models.SavedFormSettings
	if err := snap.DataTo(&settings); err != nil {
		return err
	}
	if settings.SnapshotID != id {
		return nil
	}

	defaults := models.SavedFormSettings{
		Config:    DefaultConfiguration(time.Now()),
		CreatedAt: time.Now(),
	}
	_, err = formSettingsDoc(userID).Set(ctx, defaults)
	return err
}
