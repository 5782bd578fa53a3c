package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
)

// renderStatsPanel charts frame times and tabulates per-phase step
// timing.
func (o *Overlay) renderStatsPanel() {
	imgui.SetNextWindowPosV(imgui.NewVec2(260, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 340), imgui.CondOnce)

	if !imgui.BeginV("Step Timing", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(o.frameHistory))

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.Separator()

	// Unroll the ring so the newest sample plots last.
	plotSamples := make([]float32, len(o.frameHistory))
	copy(plotSamples, o.frameHistory[o.frameOffset:])
	copy(plotSamples[len(o.frameHistory)-o.frameOffset:], o.frameHistory[:o.frameOffset])

	if implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("ms", &plotSamples[0], int32(len(plotSamples)))
		implot.EndPlot()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Phases", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Phase")
		imgui.TableSetupColumn("Last (ms)")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, phase := range o.sim.Stats().Phases() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(phase.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(phase.Last.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(phase.Avg().Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(phase.Min.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(phase.Max.Microseconds())/1000.0))
		}
		imgui.EndTable()
	}

	imgui.End()
}
