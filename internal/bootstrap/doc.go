// Package bootstrap drives cytraco's first-run setup to a terminal outcome.
//
// The [Orchestrator] coordinates three collaborators: a [Store] holding the
// persisted configuration, a [Directory] that scans for and probes BLE
// trainers, and a [Prompter] that asks the rider to decide. It runs a
// sequential state machine:
//
//	AcquireThreshold / LoadedConfiguration
//	        -> TestConfiguredDevice -> PromptReconnect
//	        -> ScanForDevices -> PromptNoDevices | PromptSingleDevice | PromptMultipleDevices
//	        -> Completed | Cancelled
//
// The configuration is written once per completed run and never on
// cancellation. Callers see an [Outcome] or an [*Error]; collaborator error
// types do not cross this package's boundary.
package bootstrap
