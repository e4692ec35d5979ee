// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/adapter"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/app"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/profile"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/service"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/tui"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/vault"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

const maxPassphraseAttempts = 3

// ErrUsage is returned for an unknown command or wrong arguments.
var ErrUsage = errors.New("invalid command")

// Usage lists the commands understood by [App.Run].
const Usage = `Commands:
  status                         show vault state (default)
  list                           unlock and list family members
  add <name> [relation]          add a family member
  remove <id>                    remove a family member
  import <file.json>             add members from a JSON array
  reset                          delete the vault
  profile                        show the profile
  profile set <field> <value>    set name, email, locale, theme, region or a preference
  profile clear                  delete the profile
  ask <prompt>                   send a chat prompt to the AI service
  version                        show build information`

// Settings are the static facts the commands print.
type Settings struct {
	VaultKey  string
	Driver    string
	BuildInfo models.AppBuildInfo
}

// App runs one command per invocation.
type App struct {
	services *service.ClientServices
	prompter Prompter
	settings Settings
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, prompter Prompter, settings Settings, out io.Writer, log *logger.Logger) *App {
	return &App{
		services: services,
		prompter: prompter,
		settings: settings,
		out:      out,
		logger:   log,
	}
}

// Run executes the command in args. No arguments runs "status".
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"status"}
	}
	cmd, rest := args[0], args[1:]

	a.logger.Info().Str("func", "App.Run").Str("command", cmd).Str("vault", a.settings.VaultKey).Msg("running command")

	switch cmd {
	case "status":
		return a.status(ctx)
	case "list":
		return a.list(ctx)
	case "add":
		if len(rest) < 1 {
			return usageError("add <name> [relation]")
		}
		return a.add(ctx, rest[0], strings.Join(rest[1:], " "))
	case "remove":
		if len(rest) != 1 {
			return usageError("remove <id>")
		}
		return a.remove(ctx, rest[0])
	case "import":
		if len(rest) != 1 {
			return usageError("import <file.json>")
		}
		return a.importFile(ctx, rest[0])
	case "reset":
		return a.reset(ctx)
	case "profile":
		return a.profile(ctx, rest)
	case "ask":
		if len(rest) == 0 {
			return usageError("ask <prompt>")
		}
		return a.ask(ctx, strings.Join(rest, " "))
	case "version":
		a.println(tui.RenderBuildInfo(a.settings.BuildInfo))
		return nil
	case "help", "-h", "--help":
		a.println(Usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func usageError(form string) error {
	return fmt.Errorf("%w: usage: %s", ErrUsage, form)
}

func (a *App) status(ctx context.Context) error {
	state, err := a.services.Family.State(ctx)
	if err != nil {
		return err
	}

	view := tui.StatusView{
		VaultKey: a.settings.VaultKey,
		State:    state.String(),
		Driver:   a.settings.Driver,
	}
	p, err := a.services.Profile.Load(ctx)
	switch {
	case err == nil:
		view.Profile = &p
	case !errors.Is(err, profile.ErrProfileNotFound):
		a.logger.Warn().Str("func", "App.status").Err(err).Msg("profile not shown")
	}

	a.println(tui.RenderStatus(view))
	return nil
}

func (a *App) list(ctx context.Context) error {
	if _, err := a.open(ctx, false); err != nil {
		return err
	}
	defer a.services.Family.Lock()

	members, err := a.services.Family.Members()
	if err != nil {
		return err
	}
	a.println(tui.RenderMembers(members))
	return nil
}

func (a *App) add(ctx context.Context, name, relation string) error {
	pass, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer a.services.Family.Lock()

	m, err := a.services.Family.AddMember(ctx, models.FamilyMember{Name: name, Relation: relation}, pass)
	if err != nil {
		return err
	}
	a.printf("added %s (%s)\n", m.Name, m.ID)
	return nil
}

func (a *App) remove(ctx context.Context, id string) error {
	pass, err := a.open(ctx, false)
	if err != nil {
		return err
	}
	defer a.services.Family.Lock()

	if err = a.services.Family.RemoveMember(ctx, id, pass); err != nil {
		return err
	}
	a.printf("removed %s\n", id)
	return nil
}

func (a *App) importFile(ctx context.Context, path string) error {
	members, err := readMembers(path)
	if err != nil {
		return err
	}

	pass, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer a.services.Family.Lock()

	added, err := a.services.Family.ImportMembers(ctx, members, pass)
	if err != nil {
		return err
	}
	a.printf("imported %d member(s)\n", len(added))
	return nil
}

func readMembers(path string) ([]models.FamilyMember, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var members []models.FamilyMember
	if err = json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("%w: import file must be a JSON array of members: %v", ErrUsage, err)
	}
	return members, nil
}

func (a *App) reset(ctx context.Context) error {
	state, err := a.services.Family.State(ctx)
	if err != nil {
		return err
	}
	if state == service.StateNoVault {
		return vault.ErrNotFound
	}

	ok, err := a.prompter.Confirm(ctx, "Delete the vault and every family member in it? This cannot be undone.")
	if err != nil {
		return err
	}
	if !ok {
		a.println("cancelled")
		return nil
	}

	if err = a.services.Family.Forget(ctx); err != nil {
		return err
	}
	a.println("vault deleted")
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		p, err := a.services.Profile.Load(ctx)
		if err != nil {
			return err
		}
		a.println(tui.RenderProfile(p))
		return nil
	}

	switch {
	case args[0] == "clear" && len(args) == 1:
		if err := a.services.Profile.Clear(ctx); err != nil {
			return err
		}
		a.println("profile cleared")
		return nil
	case args[0] == "set" && len(args) >= 3:
		p, err := a.services.Profile.Load(ctx)
		if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
			return err
		}
		setProfileField(&p, args[1], strings.Join(args[2:], " "))

		if p, err = a.services.Profile.Save(ctx, p); err != nil {
			return err
		}
		a.println(tui.RenderProfile(p))
		return nil
	default:
		return usageError("profile [set <field> <value> | clear]")
	}
}

func setProfileField(p *models.Profile, field, value string) {
	switch strings.ToLower(field) {
	case "name":
		p.DisplayName = value
	case "email":
		p.Email = value
	case "locale":
		p.Locale = value
	case "theme":
		p.Theme = value
	case "region":
		p.HomeRegion = value
	default:
		if p.Preferences == nil {
			p.Preferences = make(map[string]string)
		}
		p.Preferences[field] = value
	}
}

func (a *App) ask(ctx context.Context, prompt string) error {
	if a.services.AI == nil {
		return adapter.ErrBackendUnavailable
	}

	resp, err := a.services.AI.Do(ctx, models.AIRequest{Kind: models.AIChat, Prompt: prompt})
	if err != nil {
		return err
	}

	switch {
	case resp.Text != "":
		a.println(resp.Text)
	case resp.MediaURL != "":
		a.println(resp.MediaURL)
	default:
		a.println(string(resp.Payload))
	}
	return nil
}

// open runs the startup flow and returns the passphrase the vault was
// opened with. A missing vault is created only when allowCreate is set.
func (a *App) open(ctx context.Context, allowCreate bool) (string, error) {
	state, err := a.services.Family.State(ctx)
	if err != nil {
		return "", err
	}

	if state == service.StateNoVault {
		if !allowCreate {
			return "", vault.ErrNotFound
		}
		a.println("No vault yet. Choose a passphrase for the new vault.")
		return a.withPassphrase(ctx, "CREATE VAULT", true, func(pass string) error {
			return a.services.Family.Create(ctx, pass)
		})
	}

	return a.withPassphrase(ctx, "UNLOCK VAULT", false, func(pass string) error {
		return a.services.Family.Unlock(ctx, pass)
	})
}

func (a *App) withPassphrase(ctx context.Context, title string, confirm bool, use func(string) error) (string, error) {
	for attempt := 1; ; attempt++ {
		pass, err := a.prompter.Passphrase(ctx, title, confirm)
		if err != nil {
			return "", err
		}

		err = use(pass)
		if err == nil {
			return pass, nil
		}
		if attempt >= maxPassphraseAttempts || !retryable(err) {
			return "", err
		}

		a.logger.Debug().Str("func", "App.withPassphrase").Int("attempt", attempt).Err(err).Msg("passphrase rejected")
		a.println(app.UserMessage(err))
	}
}

func retryable(err error) bool {
	return errors.Is(err, vault.ErrAuthenticationFailed) ||
		errors.Is(err, vault.ErrEmptyPassphrase) ||
		errors.Is(err, vault.ErrPassphraseTooShort)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
