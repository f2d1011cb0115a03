// Package testing drives a scene frame by frame without a display.
//
// # Quick Start
//
// Create a tester, add roots, and simulate the pointer:
//
//	func TestCounter(t *testing.T) {
//	    tester := ferntest.NewSceneTesterWithT(t)
//	    label := widgets.TextAt(50, 400, "COUNT: 0", 2, graphics.ColorWhite)
//	    btn := widgets.ButtonOf(widgets.ButtonConfig{X: 300, Y: 250, Width: 200, Height: 50, Label: "CLICK ME"})
//	    btn.OnClick.Connect(func() { label.SetText("COUNT: 1") })
//	    tester.Add(label, btn)
//
//	    if err := tester.Tap(ferntest.ByLabel("CLICK ME")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.Find(ferntest.ByText("COUNT: 1")).Exists() {
//	        t.Error("expected 'COUNT: 1' text")
//	    }
//	}
//
// Every frame renders through a recorder, so the rasterizer calls of the last
// frame are available from [SceneTester.Ops] alongside the pixels.
//
// # Snapshot Testing
//
// Capture and compare widget tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	FERN_UPDATE_SNAPSHOTS=1 go test ./...
package testing
