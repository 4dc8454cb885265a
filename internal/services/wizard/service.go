package wizard

import (
	"context"
	"log/slog"

	"github.com/draftwright/charwizard/internal/dice"
	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
	"github.com/draftwright/charwizard/internal/repositories/draft"
	"github.com/draftwright/charwizard/internal/repositories/roster"
	charsvc "github.com/draftwright/charwizard/internal/services/character"
)

// DefaultDraftKey is the fixed storage key for the single in-progress
// draft a user can have open
const DefaultDraftKey = "character-wizard"

// Service owns the wizard state machine: step cursor, advancement gates,
// draft persistence and completion. All derivations are pure projections
// of the current selections; nothing is cached between calls.
//
// Draft writes are best-effort. A failed save or delete is logged and
// swallowed so persistence trouble can never block a step transition.
type Service struct {
	catalog   rulebook.Catalog
	drafts    draft.Repository
	roster    roster.Repository
	assembler *charsvc.Assembler
	roller    dice.Roller
	draftKey  string
	log       *slog.Logger
}

// Config holds dependencies for the wizard service
type Config struct {
	Catalog   rulebook.Catalog
	Drafts    draft.Repository
	Roster    roster.Repository
	Assembler *charsvc.Assembler
	Roller    dice.Roller

	// DraftKey overrides DefaultDraftKey; useful for per-user keys
	DraftKey string
	Logger   *slog.Logger
}

// NewService creates a wizard service
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Catalog == nil {
		return nil, errors.InvalidArgument("catalog cannot be nil")
	}
	if cfg.Drafts == nil {
		return nil, errors.InvalidArgument("draft repository cannot be nil")
	}
	if cfg.Roster == nil {
		return nil, errors.InvalidArgument("roster repository cannot be nil")
	}
	if cfg.Assembler == nil {
		return nil, errors.InvalidArgument("assembler cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.InvalidArgument("dice roller cannot be nil")
	}

	key := cfg.DraftKey
	if key == "" {
		key = DefaultDraftKey
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		catalog:   cfg.Catalog,
		drafts:    cfg.Drafts,
		roster:    cfg.Roster,
		assembler: cfg.Assembler,
		roller:    cfg.Roller,
		draftKey:  key,
		log:       logger,
	}, nil
}

// Session is one open wizard. It holds the working draft; every mutation
// re-persists it. Sessions are not safe for concurrent use: the wizard is
// single-threaded by construction, each input is a synchronous transition.
type Session struct {
	svc   *Service
	draft *character.Draft

	// saved holds a previously persisted draft found on Start. It stays
	// pending until the caller picks Resume or Discard; the working draft
	// is fresh in the meantime and nothing is persisted over the save.
	saved *character.Draft
}

// Start opens a wizard session. If a saved draft exists it is surfaced via
// HasSavedDraft; the session starts fresh either way and the caller decides
// between Resume and Discard. A failing draft load is treated as no draft.
func (s *Service) Start(ctx context.Context) *Session {
	sess := &Session{svc: s, draft: character.NewDraft()}

	saved, err := s.drafts.Get(ctx, s.draftKey)
	if err != nil {
		if !errors.IsNotFound(err) {
			s.log.WarnContext(ctx, "failed to load draft, starting fresh",
				"key", s.draftKey, "error", err)
		}
		return sess
	}
	if saved != nil && saved.Selections != nil {
		// Drafts saved before any allocation work omit the allocator;
		// install a fresh one so the ability mutators stay usable.
		if saved.Selections.Allocation == nil {
			saved.Selections.Allocation = character.NewAllocation()
		}
		sess.saved = saved
	}
	return sess
}

// HasSavedDraft reports whether a resume decision is pending
func (sess *Session) HasSavedDraft() bool {
	return sess.saved != nil
}

// SavedStep returns the step the pending saved draft was on, clamped to
// the saved selections' valid range; zero when nothing is pending
func (sess *Session) SavedStep() int {
	if sess.saved == nil {
		return 0
	}
	return clampStep(sess.saved.CurrentStep, sess.saved.Selections, sess.svc.catalog)
}

// Resume adopts the saved draft, clamping its step into the valid range
func (sess *Session) Resume() {
	if sess.saved == nil {
		return
	}
	sess.draft = sess.saved
	sess.draft.CurrentStep = clampStep(sess.draft.CurrentStep, sess.draft.Selections, sess.svc.catalog)
	sess.saved = nil
}

// Discard drops the saved draft and clears it from storage
func (sess *Session) Discard(ctx context.Context) {
	sess.saved = nil
	if err := sess.svc.drafts.Delete(ctx, sess.svc.draftKey); err != nil {
		sess.svc.log.WarnContext(ctx, "failed to discard draft",
			"key", sess.svc.draftKey, "error", err)
	}
}

// Draft exposes the working draft for rendering
func (sess *Session) Draft() *character.Draft {
	return sess.draft
}

// Selections exposes the working selections for rendering
func (sess *Session) Selections() *character.Selections {
	return sess.draft.Selections
}

// persist saves the working draft, swallowing failures. Nothing is written
// while a resume decision is pending so the saved draft is never clobbered
// before the user chooses.
func (sess *Session) persist(ctx context.Context) {
	if sess.saved != nil {
		return
	}
	if err := sess.svc.drafts.Put(ctx, sess.svc.draftKey, sess.draft); err != nil {
		sess.svc.log.WarnContext(ctx, "failed to persist draft",
			"key", sess.svc.draftKey, "step", sess.draft.CurrentStep, "error", err)
	}
}

func clampStep(step int, sel *character.Selections, catalog rulebook.Catalog) int {
	total := TotalSteps(sel, catalog)
	if step < 1 {
		return 1
	}
	if step > total {
		return total
	}
	return step
}

// SetRace selects a race and clears any subrace from a previous race
func (sess *Session) SetRace(ctx context.Context, raceKey string) error {
	if sess.svc.catalog.Race(raceKey) == nil {
		return errors.NotFoundf("race '%s' not found", raceKey)
	}
	sel := sess.draft.Selections
	if sel.RaceKey != raceKey {
		sel.SubraceKey = ""
	}
	sel.RaceKey = raceKey
	sess.persist(ctx)
	return nil
}

// SetSubrace selects a subrace of the chosen race
func (sess *Session) SetSubrace(ctx context.Context, subraceKey string) error {
	sel := sess.draft.Selections
	race := sess.svc.catalog.Race(sel.RaceKey)
	if race == nil {
		return errors.Validation("choose a race before a subrace")
	}
	if subraceKey != "" && race.Subrace(subraceKey) == nil {
		return errors.NotFoundf("subrace '%s' not found for race '%s'", subraceKey, sel.RaceKey)
	}
	sel.SubraceKey = subraceKey
	sess.persist(ctx)
	return nil
}

// SetClass selects a class. The step sequence is a projection of the
// selections, so a caster/non-caster switch reshapes it immediately;
// spells the new class cannot learn are discarded and never restored by
// switching back. The cursor is clamped in case the sequence shrank
// beneath it.
func (sess *Session) SetClass(ctx context.Context, classKey string) error {
	class := sess.svc.catalog.Class(classKey)
	if class == nil {
		return errors.NotFoundf("class '%s' not found", classKey)
	}

	sel := sess.draft.Selections
	if sel.ClassKey != classKey {
		sel.SubclassKey = ""
		sel.SkillKeys = nil
		sel.ExpertiseKeys = nil
		sel.EquipmentPicks = nil
		sel.SpellKeys = retainKnowable(sel.SpellKeys, class, sess.svc.catalog)
	}
	sel.ClassKey = classKey
	sess.draft.CurrentStep = clampStep(sess.draft.CurrentStep, sel, sess.svc.catalog)
	sess.persist(ctx)
	return nil
}

func retainKnowable(spellKeys []string, class *rulebook.Class, catalog rulebook.Catalog) []string {
	if len(spellKeys) == 0 {
		return nil
	}
	kept := spellKeys[:0:0]
	for _, key := range spellKeys {
		spell := catalog.Spell(key)
		if spell != nil && spell.KnownBy(class.Key) {
			kept = append(kept, key)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// SetSubclass selects a subclass of the chosen class
func (sess *Session) SetSubclass(ctx context.Context, subclassKey string) error {
	sel := sess.draft.Selections
	class := sess.svc.catalog.Class(sel.ClassKey)
	if class == nil {
		return errors.Validation("choose a class before a subclass")
	}
	if subclassKey != "" && class.Subclass(subclassKey) == nil {
		return errors.NotFoundf("subclass '%s' not found for class '%s'", subclassKey, sel.ClassKey)
	}
	sel.SubclassKey = subclassKey
	sess.persist(ctx)
	return nil
}

// SetAllocationMode switches the active ability-score mode
func (sess *Session) SetAllocationMode(ctx context.Context, mode character.AllocationMode) error {
	if err := sess.draft.Selections.Allocation.SetMode(mode); err != nil {
		return err
	}
	sess.persist(ctx)
	return nil
}

// RollAbilityPool rolls a fresh dice pool; re-rolling replaces the pool
// and clears assignments
func (sess *Session) RollAbilityPool(ctx context.Context) error {
	if err := sess.draft.Selections.Allocation.RollPool(sess.svc.roller); err != nil {
		return err
	}
	sess.persist(ctx)
	return nil
}

// AssignScore assigns a pool value to an attribute (array and roll modes)
func (sess *Session) AssignScore(ctx context.Context, attr shared.Attribute, value int) error {
	if err := sess.draft.Selections.Allocation.Assign(attr, value); err != nil {
		return err
	}
	sess.persist(ctx)
	return nil
}

// UnassignScore clears an attribute's pool assignment
func (sess *Session) UnassignScore(ctx context.Context, attr shared.Attribute) error {
	if err := sess.draft.Selections.Allocation.Unassign(attr); err != nil {
		return err
	}
	sess.persist(ctx)
	return nil
}

// SetScore sets an attribute's value (point-buy and manual modes)
func (sess *Session) SetScore(ctx context.Context, attr shared.Attribute, value int) error {
	if err := sess.draft.Selections.Allocation.SetScore(attr, value); err != nil {
		return err
	}
	sess.persist(ctx)
	return nil
}

// SetName sets the character name
func (sess *Session) SetName(ctx context.Context, name string) {
	sess.draft.Selections.Name = name
	sess.persist(ctx)
}

// SetBackground selects an optional background; empty clears it
func (sess *Session) SetBackground(ctx context.Context, backgroundKey string) error {
	if backgroundKey != "" && sess.svc.catalog.Background(backgroundKey) == nil {
		return errors.NotFoundf("background '%s' not found", backgroundKey)
	}
	sess.draft.Selections.BackgroundKey = backgroundKey
	sess.persist(ctx)
	return nil
}

// ToggleSpell adds or removes a spell selection. Adding checks the spell
// exists, sits on the class list at a castable level, and that the
// spells-known budget is not already full.
func (sess *Session) ToggleSpell(ctx context.Context, spellKey string) error {
	sel := sess.draft.Selections

	if sel.HasSpell(spellKey) {
		kept := make([]string, 0, len(sel.SpellKeys)-1)
		for _, key := range sel.SpellKeys {
			if key != spellKey {
				kept = append(kept, key)
			}
		}
		sel.SpellKeys = kept
		sess.persist(ctx)
		return nil
	}

	class := sess.svc.catalog.Class(sel.ClassKey)
	if !class.IsCaster() {
		return errors.Validation("the selected class does not cast spells")
	}
	spell := sess.svc.catalog.Spell(spellKey)
	if spell == nil {
		return errors.NotFoundf("spell '%s' not found", spellKey)
	}
	if !spell.KnownBy(class.Key) {
		return errors.Validationf("spell '%s' is not on the %s list", spellKey, class.Name)
	}
	if spell.Level > rulebook.MaxSpellLevel(1) {
		return errors.Validationf("spell '%s' is above your highest castable level", spellKey)
	}
	budget := SpellBudget(sel, sess.svc.catalog)
	if len(sel.SpellKeys) >= budget {
		return errors.Validationf("you already know %d spells", budget)
	}

	sel.SpellKeys = append(sel.SpellKeys, spellKey)
	sess.persist(ctx)
	return nil
}

// ToggleSkill adds or removes a skill selection; adding checks membership
// in the class's skill options. Dropping a skill also drops its expertise
// mark so expertise stays a subset of selected skills.
func (sess *Session) ToggleSkill(ctx context.Context, skillKey string) error {
	sel := sess.draft.Selections

	if sel.HasSkill(skillKey) {
		kept := make([]string, 0, len(sel.SkillKeys)-1)
		for _, key := range sel.SkillKeys {
			if key != skillKey {
				kept = append(kept, key)
			}
		}
		sel.SkillKeys = kept

		expertise := make([]string, 0, len(sel.ExpertiseKeys))
		for _, key := range sel.ExpertiseKeys {
			if key != skillKey {
				expertise = append(expertise, key)
			}
		}
		sel.ExpertiseKeys = expertise
		sess.persist(ctx)
		return nil
	}

	class := sess.svc.catalog.Class(sel.ClassKey)
	if class == nil {
		return errors.Validation("choose a class before picking skills")
	}
	offered := false
	for _, option := range class.SkillOptions {
		if option == skillKey {
			offered = true
			break
		}
	}
	if !offered {
		return errors.Validationf("skill '%s' is not offered by the %s class", skillKey, class.Name)
	}

	sel.SkillKeys = append(sel.SkillKeys, skillKey)
	sess.persist(ctx)
	return nil
}

// ToggleExpertise marks or unmarks a selected skill as expertise
func (sess *Session) ToggleExpertise(ctx context.Context, skillKey string) error {
	sel := sess.draft.Selections

	for i, key := range sel.ExpertiseKeys {
		if key == skillKey {
			sel.ExpertiseKeys = append(sel.ExpertiseKeys[:i], sel.ExpertiseKeys[i+1:]...)
			sess.persist(ctx)
			return nil
		}
	}

	if !sel.HasSkill(skillKey) {
		return errors.Validationf("skill '%s' must be selected before taking expertise", skillKey)
	}
	if len(sel.ExpertiseKeys) >= expertiseCount {
		return errors.Validationf("only %d expertise picks are allowed", expertiseCount)
	}
	sel.ExpertiseKeys = append(sel.ExpertiseKeys, skillKey)
	sess.persist(ctx)
	return nil
}

// SetEquipmentPick records the chosen option index for a class equipment
// choice group
func (sess *Session) SetEquipmentPick(ctx context.Context, choiceKey string, optionIndex int) error {
	sel := sess.draft.Selections
	class := sess.svc.catalog.Class(sel.ClassKey)
	if class == nil {
		return errors.Validation("choose a class before picking equipment")
	}

	var choice *rulebook.EquipmentChoice
	for i := range class.EquipmentChoices {
		if class.EquipmentChoices[i].Key == choiceKey {
			choice = &class.EquipmentChoices[i]
			break
		}
	}
	if choice == nil {
		return errors.NotFoundf("equipment choice '%s' not found for class '%s'", choiceKey, sel.ClassKey)
	}
	if optionIndex < 0 || optionIndex >= len(choice.Options) {
		return errors.InvalidArgumentf("option %d is out of range for choice '%s'", optionIndex, choiceKey)
	}

	if sel.EquipmentPicks == nil {
		sel.EquipmentPicks = make(map[string]int)
	}
	sel.EquipmentPicks[choiceKey] = optionIndex
	sess.persist(ctx)
	return nil
}

// CanAdvance checks the current step's advancement gate
func (sess *Session) CanAdvance() error {
	return CanAdvance(sess.draft.CurrentStep, sess.draft.Selections, sess.svc.catalog)
}

// Advance moves forward one step when the current gate passes. Advancing
// from the summary step is completion and goes through Complete instead.
func (sess *Session) Advance(ctx context.Context) error {
	if err := sess.CanAdvance(); err != nil {
		return err
	}
	sel := sess.draft.Selections
	if sess.draft.CurrentStep >= TotalSteps(sel, sess.svc.catalog) {
		return errors.Validation("already on the final step; finish the wizard to complete")
	}
	sess.draft.CurrentStep++
	sess.persist(ctx)
	return nil
}

// Back moves one step backward, unvalidated
func (sess *Session) Back(ctx context.Context) {
	if sess.draft.CurrentStep > 1 {
		sess.draft.CurrentStep--
		sess.persist(ctx)
	}
}

// JumpTo moves directly to a step, unvalidated: later steps simply render
// with defaults until their own gates are satisfied
func (sess *Session) JumpTo(ctx context.Context, step int) error {
	total := TotalSteps(sess.draft.Selections, sess.svc.catalog)
	if step < 1 || step > total {
		return errors.InvalidArgumentf("step %d is out of range 1..%d", step, total)
	}
	sess.draft.CurrentStep = step
	sess.persist(ctx)
	return nil
}

// StepProgress describes one step for a progress indicator
type StepProgress struct {
	Number   int
	Kind     StepKind
	Complete bool
	Current  bool
}

// Progress projects the step sequence with per-step gate state
func (sess *Session) Progress() []StepProgress {
	sel := sess.draft.Selections
	steps := StepsFor(sel, sess.svc.catalog)
	progress := make([]StepProgress, len(steps))
	for i, kind := range steps {
		number := i + 1
		progress[i] = StepProgress{
			Number:   number,
			Kind:     kind,
			Complete: CanAdvance(number, sel, sess.svc.catalog) == nil,
			Current:  number == sess.draft.CurrentStep,
		}
	}
	return progress
}

// Preview derives the stat block for the current selections: racial
// bonuses applied, then the full derivation. Validation errors mean the
// preview is not yet computable, the wizard renders placeholders.
func (sess *Session) Preview() (*character.DerivedStats, error) {
	sel := sess.draft.Selections

	class := sess.svc.catalog.Class(sel.ClassKey)
	if class == nil {
		return nil, errors.Validation("choose a class to preview stats")
	}
	base, ok := sel.Allocation.BaseScores()
	if !ok {
		return nil, errors.Validation("complete ability scores to preview stats")
	}

	final := charsvc.ApplyBonuses(base, sel.RaceKey, sel.SubraceKey, sess.svc.catalog)
	return character.Derive(class, 1, final)
}

// Complete validates every gate, assembles the character, stores it and
// clears the draft. The draft delete is best-effort like every other
// draft write; a character that fails to store is a real error.
func (sess *Session) Complete(ctx context.Context, ownerID string) (*character.Character, error) {
	sel := sess.draft.Selections
	for step := 1; step <= TotalSteps(sel, sess.svc.catalog); step++ {
		if err := CanAdvance(step, sel, sess.svc.catalog); err != nil {
			return nil, err
		}
	}

	char, err := sess.svc.assembler.Assemble(ownerID, sel)
	if err != nil {
		return nil, err
	}
	if err := sess.svc.roster.Create(ctx, char); err != nil {
		return nil, err
	}

	if err := sess.svc.drafts.Delete(ctx, sess.svc.draftKey); err != nil {
		sess.svc.log.WarnContext(ctx, "failed to delete draft after completion",
			"key", sess.svc.draftKey, "error", err)
	}
	return char, nil
}

// Cancel abandons the wizard and clears the draft
func (sess *Session) Cancel(ctx context.Context) {
	if err := sess.svc.drafts.Delete(ctx, sess.svc.draftKey); err != nil {
		sess.svc.log.WarnContext(ctx, "failed to delete draft on cancel",
			"key", sess.svc.draftKey, "error", err)
	}
	sess.draft = character.NewDraft()
	sess.saved = nil
}
