// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

const (
	idColumnWidth   = 36
	nameColumnWidth = 28
	relColumnWidth  = 16
)

// RenderMembers renders the family members as a table in stored order.
func RenderMembers(members []models.FamilyMember) string {
	if len(members) == 0 {
		return renderPage("FAMILY", "No family members yet. Use \"add <name> <relation>\".", "")
	}

	rows := make([]string, 0, len(members)+1)
	rows = append(rows, memberRow("ID", "Name", "Relation", "Born"))
	for _, m := range members {
		rows = append(rows, memberRow(m.ID, m.Name, m.Relation, m.BirthDate))
	}

	data := strings.Join(rows, "\n") + fmt.Sprintf("\n\n%d member(s)", len(members))
	return renderPage("FAMILY", data, "")
}

func memberRow(id, name, relation, born string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Width(idColumnWidth+2).Render(fitText(valueOrDash(id), idColumnWidth)),
		cellStyle.Width(nameColumnWidth+2).Render(fitText(valueOrDash(name), nameColumnWidth)),
		cellStyle.Width(relColumnWidth+2).Render(fitText(valueOrDash(relation), relColumnWidth)),
		valueOrDash(born),
	)
}

// StatusView is what the "status" command shows.
type StatusView struct {
	VaultKey string
	State    string
	Driver   string
	Profile  *models.Profile
}

// RenderStatus renders the vault state and the saved profile, if any.
func RenderStatus(s StatusView) string {
	var b strings.Builder
	b.WriteString("Vault     │ ")
	b.WriteString(s.VaultKey)
	b.WriteString("\nState     │ ")
	b.WriteString(s.State)
	b.WriteString("\nStorage   │ ")
	b.WriteString(valueOrDash(s.Driver))

	name := ""
	if s.Profile != nil {
		name = s.Profile.DisplayName
	}
	b.WriteString("\nProfile   │ ")
	b.WriteString(valueOrDash(name))

	return renderPage("STATUS", b.String(), "")
}

// RenderProfile renders every profile field, preferences in key order.
func RenderProfile(p models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name      │ %s\n", valueOrDash(p.DisplayName))
	fmt.Fprintf(&b, "Email     │ %s\n", valueOrDash(p.Email))
	fmt.Fprintf(&b, "Locale    │ %s\n", valueOrDash(p.Locale))
	fmt.Fprintf(&b, "Theme     │ %s\n", valueOrDash(p.Theme))
	fmt.Fprintf(&b, "Region    │ %s", valueOrDash(p.HomeRegion))

	prefs := make([]string, 0, len(p.Preferences))
	for k := range p.Preferences {
		prefs = append(prefs, k)
	}
	sort.Strings(prefs)
	for _, k := range prefs {
		fmt.Fprintf(&b, "\n%-9s │ %s", fitText(k, 9), valueOrDash(p.Preferences[k]))
	}

	if !p.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "\nUpdated   │ %s", p.UpdatedAt.Format("2006-01-02 15:04"))
	}

	return renderPage("PROFILE", b.String(), "")
}
