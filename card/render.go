package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"idcard/models"
)

var (
	brand  = lipgloss.Color("#1D4ED8")
	muted  = lipgloss.Color("#6B7280")
	border = lipgloss.Color("#93C5FD")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(brand)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(muted)
	footStyle  = lipgloss.NewStyle().Italic(true).Foreground(muted)
)

const notAvailable = "N/A"

// Render draws the front and back of the ID card for a terminal.
func Render(p models.Profile) string {
	d := NewData(p)

	front := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("EMPLOYEE ID CARD")+"  "+labelStyle.Render(p.Office),
		labelStyle.Render("Employee No. ")+d.EmployeeNo,
		"",
		nameStyle.Render(d.FullName),
		d.Position,
		"",
		field("Employment Status", d.StatusOfEmployment),
		field("Blood Type", d.BloodType),
		field("Contact Number", d.ContactNo),
		field("Birthday", d.Birthday),
		field("Photo", d.PhotoURL),
	))

	back := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Personal Information"),
		field("Home Address", d.HomeAddress),
		field("Emergency Contact", p.NameOfContactPerson),
		"",
		titleStyle.Render("Government IDs"),
		field("TIN", d.TIN),
		field("GSIS", d.GSIS),
		field("Pag-IBIG", d.PagIbig),
		field("PhilHealth", d.PhilHealth),
	))

	foot := footStyle.Render("This is your official digital employee identification card.")
	return strings.Join([]string{front, back, foot}, "\n")
}

func field(label, value string) string {
	if value == "" {
		value = notAvailable
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}
