package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lazharichir/handscore/hands"
	"github.com/pterm/pterm"
)

func renderClassification(w io.Writer, h hands.Hand) error {
	category := hands.Classify(h)
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTitle(pterm.LightYellow("|HAND|")).WithTitleTopCenter()
	_, err := fmt.Fprintln(w, box.Sprint(
		pterm.Sprintfln("Hand:     %s", h),
		pterm.Sprintf("Category: %s (score %d)", pterm.LightCyan(category), category.Score()),
	))
	return err
}

func renderExampleResults(w io.Writer, results []hands.ExampleResult) error {
	data := pterm.TableData{{"Expected", "Hand", "Score", "Got", "Result"}}
	for _, res := range results {
		verdict := pterm.LightGreen("correct")
		if !res.Correct {
			verdict = pterm.LightRed("incorrect")
		}
		data = append(data, []string{
			res.Category.String(),
			res.Hand.String(),
			strconv.Itoa(res.Got.Score()),
			res.Got.String(),
			verdict,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
