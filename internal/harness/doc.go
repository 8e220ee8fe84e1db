// Package harness runs analysis scenarios and checks their reports.
//
// A scenario is a YAML file naming a recording (inline or by path), an
// optional job and policy directory, and a list of assertions on the
// resulting report:
//
//	name: mnk_cooldowns
//	description: Monk cooldown table uses the job ordering
//	recording: ../recordings/mnk.json
//	assertions:
//	  - type: cooldown_uses
//	    row: Fists
//	    uses: [1000, 25000]
//
// Scenarios run the real engine with the real module set, so a passing
// scenario exercises normalisation, dispatch and report assembly end to end.
//
// # Golden reports
//
// RunWithGolden compares the canonical JSON of the sealed report against
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
