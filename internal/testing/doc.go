// Package testing provides test doubles, builders, and fixtures for the
// bootstrap flow and the commands that drive it.
//
// This package centralizes the collaborators the orchestrator needs:
//   - MemoryStore: in-memory configuration store that counts saves
//   - FakeDirectory: scripted scan results and reachability answers
//   - ScriptedPrompter: queued answers, records which prompts were shown
//   - MockStore, MockDirectory: testify mocks for call expectations
//
// Usage:
//
//	store := testing.NewMemoryStore().With(testing.NewConfigBuilder().WithThreshold(200).Build())
//	dir := testing.NewFakeDirectory().WithScan(testing.Devices(3)...)
//	prompter := testing.NewScriptedPrompter().SelectDevice(2)
package testing
