package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

type histogramRow struct {
	Label    string
	Count    int
	Fraction float32
}

// clearRows turns the clear histogram into rows for 1 through 4 lines. Fractions
// are relative to the most frequent clear size.
func clearRows(stats engine.StatsSnapshot) []histogramRow {
	labels := []string{"single", "double", "triple", "quad"}
	counts := make([]int, len(labels))
	for i := range labels {
		counts[i] = stats.Clears[i+1]
	}
	return toRows(labels, counts)
}

// spawnRows lists how many pieces of each kind were spawned.
func spawnRows(stats engine.StatsSnapshot) []histogramRow {
	kinds := engine.Kinds()
	labels := make([]string, len(kinds))
	counts := make([]int, len(kinds))
	for i, k := range kinds {
		labels[i] = k.String()
		counts[i] = stats.Spawned[k]
	}
	return toRows(labels, counts)
}

func toRows(labels []string, counts []int) []histogramRow {
	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	rows := make([]histogramRow, len(labels))
	for i, label := range labels {
		rows[i] = histogramRow{Label: label, Count: counts[i]}
		if peak > 0 {
			rows[i].Fraction = float32(counts[i]) / float32(peak)
		}
	}
	return rows
}

// StatsViewer shows the cumulative engine counters.
type StatsViewer struct {
	engine *engine.Engine
}

func NewStatsViewer(e *engine.Engine) *StatsViewer {
	return &StatsViewer{engine: e}
}

func (sv *StatsViewer) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)

	if !imgui.BeginV("Game Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := sv.engine.Stats()
	imgui.Text(fmt.Sprintf("Games: %d", stats.Games))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", stats.Locked))
	imgui.Text(fmt.Sprintf("Holds: %d", stats.Holds))
	imgui.Text(fmt.Sprintf("Lines: %d in %d clears", stats.TotalLines(), stats.TotalClears()))

	renderHistogram("ClearsTable", "Clear", clearRows(stats))
	renderHistogram("SpawnTable", "Piece", spawnRows(stats))

	imgui.End()
}

func renderHistogram(id, heading string, rows []histogramRow) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn(heading)
	imgui.TableSetupColumn("Count")
	imgui.TableHeadersRow()

	for _, row := range rows {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(row.Label)
		imgui.TableNextColumn()
		imgui.ProgressBarV(row.Fraction, imgui.NewVec2(-1, 0), fmt.Sprintf("%d", row.Count))
	}
	imgui.EndTable()
}
