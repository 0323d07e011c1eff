package form

import (
	"context"
	"errors"
	"testing"

	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubGenerator struct {
	letter string
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, _ models.AgencyRecord, _ i18n.Language) string {
	s.calls++
	return s.letter
}

type stubRecorder struct {
	err   error
	calls int
	last  *models.Submission
}

func (s *stubRecorder) Persist(_ context.Context, record models.AgencyRecord, letter string, lang i18n.Language) (*models.Submission, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.last = &models.Submission{AgencyRecord: record, Letter: letter, Language: string(lang), Status: "pending"}
	return s.last, nil
}

func allVisible() models.FieldVisibility {
	return models.FieldVisibility{
		AgencyName: true, AgentID: true, Country: true,
		Whatsapp: true, AdminName: true, AdminID: true,
	}
}

func filledRecord() models.AgencyRecord {
	return models.AgencyRecord{
		AgencyName: "Star Agency",
		AgentID:    "A-100",
		Country:    "Saudi Arabia",
		Whatsapp:   "+966 500000000",
		AdminName:  "Sara",
		AdminID:    "AD-7",
	}
}

func newTestController(t *testing.T, vis models.FieldVisibility, gen *stubGenerator, rec *stubRecorder) *Controller {
	t.Helper()
	if gen == nil {
		gen = &stubGenerator{letter: "Dear Management,"}
	}
	if rec == nil {
		rec = &stubRecorder{}
	}
	return NewController(vis, i18n.English, gen, rec, zaptest.NewLogger(t))
}

func TestValidate_VisibilityRule(t *testing.T) {
	// A field errors iff it is visible and its trimmed value is empty.
	// Exercise every one of the 2^6 visibility combinations against a record
	// where half the fields are blank.
	record := models.AgencyRecord{
		AgencyName: "Star Agency",
		AgentID:    "   ", // whitespace only counts as empty
		Country:    "Egypt",
		Whatsapp:   "",
		AdminName:  "Omar",
		AdminID:    "",
	}

	for mask := 0; mask < 1<<6; mask++ {
		var vis models.FieldVisibility
		flags := []*bool{&vis.AgencyName, &vis.AgentID, &vis.Country, &vis.Whatsapp, &vis.AdminName, &vis.AdminID}
		for i, f := range flags {
			*f = mask&(1<<i) != 0
		}

		errs := Validate(record, vis, "Required")
		for i, field := range models.FieldNames {
			visible := mask&(1<<i) != 0
			empty := field == "agentId" || field == "whatsapp" || field == "adminId"
			_, hasErr := errs[field]
			assert.Equal(t, visible && empty, hasErr,
				"mask %06b field %s", mask, field)
		}
	}
}

func TestValidate_AllFilledAllVisible(t *testing.T) {
	errs := Validate(filledRecord(), allVisible(), "Required")
	assert.Empty(t, errs)
}

func TestValidate_HiddenFieldExempt(t *testing.T) {
	// agencyName hidden, every field empty: exactly the five visible fields fail.
	vis := allVisible()
	vis.AgencyName = false

	errs := Validate(models.AgencyRecord{}, vis, "Required")
	assert.Len(t, errs, 5)
	assert.NotContains(t, errs, "agencyName")
	for _, field := range []string{"agentId", "country", "whatsapp", "adminName", "adminId"} {
		assert.Contains(t, errs, field)
	}
}

func TestController_SubmitLifecycle(t *testing.T) {
	gen := &stubGenerator{letter: "Dear Management, ..."}
	rec := &stubRecorder{}
	ctrl := newTestController(t, allVisible(), gen, rec)

	require.Equal(t, StateIdle, ctrl.State())
	for _, field := range models.FieldNames {
		require.True(t, ctrl.SetField(field, "value"))
	}

	letter, err := ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dear Management, ...", letter)
	assert.Equal(t, StateSuccess, ctrl.State())
	assert.Equal(t, letter, ctrl.Letter())
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "pending", rec.last.Status)

	// Terminal until reset: edits and re-submits are rejected.
	assert.False(t, ctrl.SetField("agencyName", "other"))
	_, err = ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotIdle)
}

func TestController_SubmitBlockedByValidation(t *testing.T) {
	ctrl := newTestController(t, allVisible(), nil, nil)

	_, err := ctrl.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Len(t, ctrl.Errors(), 6)
}

func TestController_PersistenceFailureStillSucceeds(t *testing.T) {
	gen := &stubGenerator{letter: "Letter body"}
	rec := &stubRecorder{err: errors.New("store unavailable")}
	ctrl := newTestController(t, allVisible(), gen, rec)
	for _, field := range models.FieldNames {
		ctrl.SetField(field, "value")
	}

	letter, err := ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Letter body", letter)
	assert.Equal(t, StateSuccess, ctrl.State())
}

func TestController_SetFieldClearsError(t *testing.T) {
	ctrl := newTestController(t, allVisible(), nil, nil)

	errs := ctrl.Validate()
	require.Contains(t, errs, "agencyName")

	ctrl.SetField("agencyName", "Star Agency")
	assert.NotContains(t, ctrl.Errors(), "agencyName")
	// Other errors stay until the next wholesale recompute.
	assert.Contains(t, ctrl.Errors(), "country")
}

func TestController_SetFieldUnknownName(t *testing.T) {
	ctrl := newTestController(t, allVisible(), nil, nil)
	assert.False(t, ctrl.SetField("nope", "x"))
}

func TestController_ResetIdempotent(t *testing.T) {
	gen := &stubGenerator{letter: "L"}
	ctrl := newTestController(t, allVisible(), gen, nil)
	for _, field := range models.FieldNames {
		ctrl.SetField(field, "value")
	}
	_, err := ctrl.Submit(context.Background())
	require.NoError(t, err)

	ctrl.Reset()
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, models.AgencyRecord{}, ctrl.Record())
	assert.Empty(t, ctrl.Errors())
	assert.Empty(t, ctrl.Letter())

	// Reset when already Idle is a no-op.
	ctrl.SetField("agencyName", "kept")
	ctrl.Reset()
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, "kept", ctrl.Record().AgencyName)
}

func TestController_HiddenFieldsStillTransmitted(t *testing.T) {
	vis := allVisible()
	vis.Whatsapp = false
	rec := &stubRecorder{}
	ctrl := newTestController(t, vis, &stubGenerator{letter: "L"}, rec)

	for _, field := range models.FieldNames {
		if field == "whatsapp" {
			continue
		}
		ctrl.SetField(field, "value")
	}

	_, err := ctrl.Submit(context.Background())
	require.NoError(t, err)
	// The hidden field travels with whatever it held, here the empty string.
	assert.Equal(t, "", rec.last.Whatsapp)
	assert.Equal(t, "value", rec.last.AgencyName)
}
