// Package form owns the submission form's state machine: field values,
// validation errors and the Idle -> Submitting -> Success lifecycle.
package form

import (
	"context"
	"errors"
	"strings"

	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"

	"go.uber.org/zap"
)

// State is the submission lifecycle position.
type State int

const (
	// StateIdle accepts edits; no submission is in flight.
	StateIdle State = iota
	// StateSubmitting has the outbound calls in flight; inputs are frozen.
	StateSubmitting
	// StateSuccess is terminal until an explicit Reset.
	StateSuccess
)

var (
	// ErrNotIdle is returned when Submit is called outside the Idle state.
	ErrNotIdle = errors.New("form: submit only valid from idle state")
	// ErrValidation is returned when Submit is attempted with failing fields.
	ErrValidation = errors.New("form: validation failed")
)

// ValidationErrors maps a field name to its human-readable error. Presence of
// a key means the field currently fails validation.
type ValidationErrors map[string]string

// LetterGenerator drafts the letter. The contract guarantees a displayable
// string for every input, so no error branch exists at this boundary.
type LetterGenerator interface {
	Generate(ctx context.Context, record models.AgencyRecord, lang i18n.Language) string
}

// SubmissionRecorder appends the frozen record to the store.
type SubmissionRecorder interface {
	Persist(ctx context.Context, record models.AgencyRecord, letter string, lang i18n.Language) (*models.Submission, error)
}

// Validate applies the single shared rule: a field fails iff it is visible
// and its trimmed value is empty. Hidden fields are exempt but keep whatever
// value they hold. The error set is recomputed wholesale.
func Validate(record models.AgencyRecord, visibility models.FieldVisibility, requiredMsg string) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range models.FieldNames {
		if visibility.Visible(field) && strings.TrimSpace(record.Get(field)) == "" {
			errs[field] = requiredMsg
		}
	}
	return errs
}

// Controller drives one submission through its lifecycle.
type Controller struct {
	state      State
	record     models.AgencyRecord
	errs       ValidationErrors
	letter     string
	visibility models.FieldVisibility
	lang       i18n.Language
	generator  LetterGenerator
	recorder   SubmissionRecorder
	log        *zap.Logger
}

// NewController starts in Idle with an empty record. The visibility map is
// whatever the configuration load produced; later edits in other sessions are
// not observed.
func NewController(visibility models.FieldVisibility, lang i18n.Language, gen LetterGenerator, rec SubmissionRecorder, log *zap.Logger) *Controller {
	return &Controller{
		state:      StateIdle,
		errs:       ValidationErrors{},
		visibility: visibility,
		lang:       lang,
		generator:  gen,
		recorder:   rec,
		log:        log,
	}
}

func (c *Controller) State() State                { return c.state }
func (c *Controller) Record() models.AgencyRecord { return c.record }
func (c *Controller) Letter() string              { return c.letter }

// Errors returns a copy of the current validation error set.
func (c *Controller) Errors() ValidationErrors {
	out := ValidationErrors{}
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// SetField assigns one record field and clears that field's error, the way
// the form clears inline errors the moment the user edits. Edits are ignored
// while a submission is in flight or after success.
func (c *Controller) SetField(field, value string) bool {
	if c.state != StateIdle {
		return false
	}
	if !c.record.Set(field, value) {
		return false
	}
	delete(c.errs, field)
	return true
}

// Validate recomputes the whole error set against the visibility map.
func (c *Controller) Validate() ValidationErrors {
	c.errs = Validate(c.record, c.visibility, i18n.T(c.lang, "required"))
	return c.Errors()
}

// Submit runs validation, drafts the letter and appends the submission.
// Letter generation cannot fail (failures arrive as apology text), and a
// failed persistence write is logged and swallowed: the user already has
// their letter, so the controller still reaches Success.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	if c.state != StateIdle {
		return "", ErrNotIdle
	}
	if errs := c.Validate(); len(errs) > 0 {
		return "", ErrValidation
	}

	c.state = StateSubmitting
	letter := c.generator.Generate(ctx, c.record, c.lang)

	if _, err := c.recorder.Persist(ctx, c.record, letter, c.lang); err != nil {
		c.log.Warn("submission persistence failed", zap.Error(err))
	}

	c.letter = letter
	c.state = StateSuccess
	return letter, nil
}

// Reset returns from Success to Idle with the record, errors and stored
// letter cleared. Calling it when already Idle is a no-op; it is ignored
// while a submission is in flight.
func (c *Controller) Reset() {
	if c.state != StateSuccess {
		return
	}
	c.state = StateIdle
	c.record = models.AgencyRecord{}
	c.errs = ValidationErrors{}
	c.letter = ""
}
