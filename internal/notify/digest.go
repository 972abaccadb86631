package notify

import (
	"fmt"
	"strings"

	"github.com/zulandar/fleetyard/internal/health"
)

// maxDigestVehicles caps how many flagged vehicles appear in one digest
// message before it truncates with a count.
const maxDigestVehicles = 15

// BuildDigest formats a fleet report into a digest message. Returns
// ok=false when the fleet is fully clear and no digest should be sent.
func BuildDigest(report health.FleetReport) (Message, bool) {
	s := report.Summary
	if s.Critical == 0 && s.Warning == 0 {
		return Message{}, false
	}

	title := fmt.Sprintf("Fleet health: %d critical, %d warning (%d vehicles active)",
		s.Critical, s.Warning, s.TotalActive)

	var b strings.Builder
	shown := report.Vehicles
	if len(shown) > maxDigestVehicles {
		shown = shown[:maxDigestVehicles]
	}
	for _, v := range shown {
		fmt.Fprintf(&b, "%s %s", statusMark(v.Status), v.VehicleCode)
		if v.Brand != "" {
			fmt.Fprintf(&b, " (%s %s)", v.Brand, v.Model)
		}
		b.WriteString("\n")
		for _, issue := range v.Issues {
			fmt.Fprintf(&b, "    - %s\n", issue.Message)
		}
	}
	if hidden := len(report.Vehicles) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "... and %d more flagged vehicles\n", hidden)
	}
	fmt.Fprintf(&b, "\n%d ok, %d with no records yet", s.OK, s.NoData)

	color := ColorWarning
	if s.Critical > 0 {
		color = ColorCritical
	}
	return Message{Title: title, Body: b.String(), Color: color}, true
}

func statusMark(status health.Severity) string {
	if status == health.SeverityCritical {
		return "[!]"
	}
	return "[~]"
}
