// Package process provides the Process aggregate root: one end-to-end
// warehouse movement driven through numbered events by form submissions.
//
// The package includes:
//   - Process: the aggregate root holding entity links and transition logic
//   - Stage: the numbered event (1..4) with event 2 always skipped numerically
//   - Status: the lifecycle state machine (draft/in_progress/paused/completed/complaint)
//   - ProcessType: the inbound/outbound fork fixed at creation
//   - Resolution: the inbound event-3 outcome (confirmed or complaint)
//   - NextStep: the routing hint derived from persisted state
//
// Key business rules:
//   - Inbound sequence: 1 -> 3 -> terminal via confirmation or complaint
//   - Outbound sequence: 1 -> 3 -> 4 -> terminal via explicit completion
//   - The stage only moves forward; pause/resume touch the status only
//   - Delivery submission on an inbound process is rejected by the aggregate
//     itself rather than left to client routing
package process
