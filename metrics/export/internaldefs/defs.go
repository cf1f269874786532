package internaldefs

import goSession "github.com/MrEthical07/goSession"

// CounterDef binds a goSession metric to its exposition name and help text.
type CounterDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// CounterDefs is ordered for stable exposition output.
var CounterDefs = []CounterDef{
	{goSession.MetricSessionRestored, "gosession_sessions_restored_total", "Sessions rehydrated from the backend."},
	{goSession.MetricSessionMinted, "gosession_sessions_minted_total", "Fresh session identifiers minted."},
	{goSession.MetricBadSignature, "gosession_bad_signatures_total", "Identifier signature verification failures."},
	{goSession.MetricDecodeFailure, "gosession_decode_failures_total", "Corrupt or unreadable stored session payloads."},
	{goSession.MetricHijackRejected, "gosession_hijack_rejections_total", "Sessions rejected for a bound-address mismatch."},
	{goSession.MetricSessionSaved, "gosession_sessions_saved_total", "Session payloads written to the backend."},
	{goSession.MetricSessionDeleted, "gosession_sessions_deleted_total", "Emptied sessions actively deleted from the backend."},
	{goSession.MetricSaveSkipped, "gosession_saves_skipped_total", "Saves gated off by explicit mode or the static-file policy."},
}
