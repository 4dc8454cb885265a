package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/draftwright/charwizard/internal/clients/dnd5e"
	"github.com/draftwright/charwizard/internal/config"
	"github.com/draftwright/charwizard/internal/dice"
	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/locale"
	draftrepo "github.com/draftwright/charwizard/internal/repositories/draft"
	rosterrepo "github.com/draftwright/charwizard/internal/repositories/roster"
	charsvc "github.com/draftwright/charwizard/internal/services/character"
	"github.com/draftwright/charwizard/internal/services/wizard"
	"github.com/draftwright/charwizard/internal/uuid"
)

var (
	useRedis bool
	ownerID  string
)

var wizardCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive character wizard",
	RunE:  runWizard,
}

func init() {
	wizardCmd.Flags().BoolVar(&useRedis, "redis", false, "persist drafts and characters in Redis")
	wizardCmd.Flags().StringVar(&ownerID, "owner", "local", "owner id for finished characters")
}

type app struct {
	cfg     *config.Config
	catalog rulebook.Catalog
	drafts  draftrepo.Repository
	roster  rosterrepo.Repository
	svc     *wizard.Service
	tr      locale.Translator
}

func buildApp() (*app, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var catalog rulebook.Catalog = rulebook.NewSRD()
	if cfg.DND5E.Enabled {
		client, err := dnd5e.New(&dnd5e.Config{
			HTTPClient: &http.Client{Timeout: cfg.DND5E.Timeout},
		})
		if err != nil {
			return nil, err
		}
		catalog, err = dnd5e.NewAPICatalog(&dnd5e.APICatalogConfig{
			Client: client,
			Base:   catalog,
		})
		if err != nil {
			return nil, err
		}
	}

	var drafts draftrepo.Repository
	var roster rosterrepo.Repository
	if useRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		drafts, err = draftrepo.NewRedis(&draftrepo.RedisConfig{
			Client: redisClient,
			TTL:    cfg.Wizard.DraftTTL,
		})
		if err != nil {
			return nil, err
		}
		roster, err = rosterrepo.NewRedis(&rosterrepo.RedisConfig{
			Client: redisClient,
		})
		if err != nil {
			return nil, err
		}
	} else {
		drafts = draftrepo.NewInMemory()
		roster = rosterrepo.NewInMemory()
	}

	assembler, err := charsvc.NewAssembler(&charsvc.AssemblerConfig{
		Catalog:     catalog,
		IDGenerator: uuid.NewGoogleGenerator(),
	})
	if err != nil {
		return nil, err
	}

	svc, err := wizard.NewService(&wizard.Config{
		Catalog:   catalog,
		Drafts:    drafts,
		Roster:    roster,
		Assembler: assembler,
		Roller:    dice.NewRandomRoller(),
		DraftKey:  cfg.Wizard.DraftKey,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		catalog: catalog,
		drafts:  drafts,
		roster:  roster,
		svc:     svc,
		tr:      locale.English(),
	}, nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)
	sess := a.svc.Start(ctx)

	if sess.HasSavedDraft() {
		fmt.Println(a.tr.T("wizard.resume.prompt", sess.SavedStep()))
		fmt.Print("[r]esume / [d]iscard: ")
		if in.Scan() && strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "r") {
			sess.Resume()
		} else {
			sess.Discard(ctx)
		}
	}

	for {
		a.renderStep(sess)
		fmt.Print("> ")
		if !in.Scan() {
			sess.Cancel(ctx)
			return nil
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		done, err := a.handleInput(ctx, sess, line)
		if err != nil {
			fmt.Printf("  ! %v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
}

func (a *app) renderStep(sess *wizard.Session) {
	sel := sess.Selections()
	step := sess.Draft().CurrentStep
	kind := wizard.KindAt(step, sel, a.catalog)
	total := wizard.TotalSteps(sel, a.catalog)

	fmt.Printf("\n== Step %d/%d: %s ==\n", step, total, a.tr.T(kind.TitleKey()))

	switch kind {
	case wizard.StepRace:
		for _, race := range a.catalog.Races() {
			marker := "  "
			if race.Key == sel.RaceKey {
				marker = "* "
			}
			fmt.Printf("%s%s (%s)\n", marker, race.Name, race.Key)
		}
	case wizard.StepClass:
		for _, class := range a.catalog.Classes() {
			marker := "  "
			if class.Key == sel.ClassKey {
				marker = "* "
			}
			fmt.Printf("%s%s (%s), d%d\n", marker, class.Name, class.Key, class.HitDie)
		}
	case wizard.StepAbilities:
		fmt.Printf("  mode: %s\n", sel.Allocation.Mode)
		if scores, ok := sel.Allocation.BaseScores(); ok {
			for _, attr := range shared.Attributes() {
				fmt.Printf("  %s %s\n", attr.Name(), character.Display(scores[attr]))
			}
		}
	case wizard.StepIdentity:
		fmt.Printf("  name: %q  background: %q\n", sel.Name, sel.BackgroundKey)
	case wizard.StepSpells:
		budget := wizard.SpellBudget(sel, a.catalog)
		fmt.Printf("  selected %d of %d\n", len(sel.SpellKeys), budget)
	case wizard.StepSkills:
		fmt.Printf("  skills: %v  expertise: %v\n", sel.SkillKeys, sel.ExpertiseKeys)
	case wizard.StepSummary:
		if stats, err := sess.Preview(); err == nil {
			fmt.Printf("  %s the %s %s: HP %d, AC %d\n",
				sel.Name, sel.RaceKey, sel.ClassKey, stats.MaxHP, stats.ArmorClass)
		}
	}
}

// handleInput dispatches one line of user input; the bool reports whether
// the wizard finished (completed or cancelled)
func (a *app) handleInput(ctx context.Context, sess *wizard.Session, line string) (bool, error) {
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])
	rest := fields[1:]

	switch verb {
	case "next", "n":
		sel := sess.Selections()
		if sess.Draft().CurrentStep == wizard.TotalSteps(sel, a.catalog) {
			char, err := sess.Complete(ctx, ownerID)
			if err != nil {
				return false, err
			}
			fmt.Printf("\nCreated %s (%s)\n", char.Name, char.ID)
			return true, nil
		}
		return false, sess.Advance(ctx)
	case "back", "b":
		sess.Back(ctx)
		return false, nil
	case "jump", "j":
		if len(rest) != 1 {
			return false, fmt.Errorf("usage: jump <step>")
		}
		step, err := strconv.Atoi(rest[0])
		if err != nil {
			return false, fmt.Errorf("usage: jump <step>")
		}
		return false, sess.JumpTo(ctx, step)
	case "cancel", "q":
		sess.Cancel(ctx)
		fmt.Println("Wizard cancelled.")
		return true, nil

	case "race":
		return false, a.withArg(rest, func(key string) error { return sess.SetRace(ctx, key) })
	case "subrace":
		return false, a.withArg(rest, func(key string) error { return sess.SetSubrace(ctx, key) })
	case "class":
		return false, a.withArg(rest, func(key string) error { return sess.SetClass(ctx, key) })
	case "subclass":
		return false, a.withArg(rest, func(key string) error { return sess.SetSubclass(ctx, key) })
	case "mode":
		return false, a.withArg(rest, func(mode string) error {
			return sess.SetAllocationMode(ctx, character.AllocationMode(mode))
		})
	case "roll":
		if err := sess.RollAbilityPool(ctx); err != nil {
			return false, err
		}
		fmt.Printf("  pool: %v\n", sess.Selections().Allocation.DiceRoll.Pool)
		return false, nil
	case "assign":
		attr, value, err := a.attrValueArgs(rest)
		if err != nil {
			return false, err
		}
		return false, sess.AssignScore(ctx, attr, value)
	case "unassign":
		return false, a.withArg(rest, func(input string) error {
			attr, ok := shared.ParseAttribute(input)
			if !ok {
				return fmt.Errorf("unknown ability %q", input)
			}
			return sess.UnassignScore(ctx, attr)
		})
	case "set":
		attr, value, err := a.attrValueArgs(rest)
		if err != nil {
			return false, err
		}
		return false, sess.SetScore(ctx, attr, value)
	case "name":
		sess.SetName(ctx, strings.Join(rest, " "))
		return false, nil
	case "background":
		return false, a.withArg(rest, func(key string) error { return sess.SetBackground(ctx, key) })
	case "spell":
		return false, a.withArg(rest, func(key string) error { return sess.ToggleSpell(ctx, key) })
	case "skill":
		return false, a.withArg(rest, func(key string) error { return sess.ToggleSkill(ctx, key) })
	case "expertise":
		return false, a.withArg(rest, func(key string) error { return sess.ToggleExpertise(ctx, key) })
	case "gear":
		if len(rest) != 2 {
			return false, fmt.Errorf("usage: gear <choice-key> <option-index>")
		}
		idx, err := strconv.Atoi(rest[1])
		if err != nil {
			return false, fmt.Errorf("usage: gear <choice-key> <option-index>")
		}
		return false, sess.SetEquipmentPick(ctx, rest[0], idx)

	default:
		return false, fmt.Errorf("unknown command %q", verb)
	}
}

func (a *app) withArg(rest []string, apply func(string) error) error {
	if len(rest) != 1 {
		return fmt.Errorf("expected one argument")
	}
	return apply(rest[0])
}

func (a *app) attrValueArgs(rest []string) (shared.Attribute, int, error) {
	if len(rest) != 2 {
		return "", 0, fmt.Errorf("usage: <ability> <value>")
	}
	attr, ok := shared.ParseAttribute(rest[0])
	if !ok {
		return "", 0, fmt.Errorf("unknown ability %q", rest[0])
	}
	value, err := strconv.Atoi(rest[1])
	if err != nil {
		return "", 0, fmt.Errorf("value must be a number")
	}
	return attr, value, nil
}
