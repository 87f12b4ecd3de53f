package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorReset  = "\033[0m"
)

// printer writes tapctl output, optionally colored
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + colorReset
}

func (p printer) success(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.paint(colorGreen, "✓ "+fmt.Sprintf(format, a...)))
}

func (p printer) failure(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.paint(colorRed, "✗ "+fmt.Sprintf(format, a...)))
}

func (p printer) header(title string) {
	fmt.Fprintln(p.w, p.paint(colorYellow, "=== "+title+" ==="))
}

func (p printer) view(v domain.View) {
	rank := v.Rank.Name
	if v.Rank.Emoji != "" {
		rank = v.Rank.Emoji + " " + rank
	}
	p.header(rank)
	fmt.Fprintf(p.w, "Balance:     %s (%s)\n", utils.FormatCompact(v.Balance), utils.FormatGrouped(v.Balance))
	fmt.Fprintf(p.w, "Earned:      %s\n", utils.FormatGrouped(v.TotalEarned))
	fmt.Fprintf(p.w, "Level:       %d\n", v.Level)
	fmt.Fprintf(p.w, "Per tap:     %s\n", utils.FormatGrouped(v.PerTapYield))
	fmt.Fprintf(p.w, "Per second:  %s\n", utils.FormatGrouped(v.PerSecondYield))
	fmt.Fprintf(p.w, "Taps:        %s\n", utils.FormatGrouped(v.TotalTaps))
	fmt.Fprintf(p.w, "Referrals:   %d\n", v.ReferralCount)
	if v.NextRank != nil {
		fmt.Fprintf(p.w, "Next rank:   %s at %s (%.0f%%)\n",
			v.NextRank.Name, utils.FormatCompact(v.NextRank.MinEarnings), v.RankProgress*100)
	}
}

func (p printer) offers(offers []domain.UpgradeOffer) {
	p.header("Upgrades")
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNED\tCOST\t")
	for _, o := range offers {
		cost := utils.FormatCompact(o.NextCost)
		switch {
		case o.Maxed:
			cost = "max"
		case !o.Affordable:
			cost += " (need more)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t\n", o.Upgrade.ID, o.Upgrade.Name, o.Owned, cost)
	}
	_ = tw.Flush()
}

func (p printer) ranks(ranks []domain.RankThreshold, current string) {
	p.header("Ranks")
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFROM\t\t")
	for _, r := range ranks {
		marker := ""
		if r.Name == current {
			marker = "<- you"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", strings.TrimSpace(r.Emoji+" "+r.Name), utils.FormatCompact(r.MinEarnings), marker)
	}
	_ = tw.Flush()
}

func (p printer) tasks(tasks []domain.TaskStatus) {
	p.header("Tasks")
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tREWARD\tSTATUS\t")
	for _, t := range tasks {
		status := "locked"
		switch {
		case t.Completed:
			status = "done"
		case t.Claimable:
			status = "claimable"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", t.Task.ID, t.Task.Title, utils.FormatCompact(t.Task.Reward), status)
	}
	_ = tw.Flush()
}
