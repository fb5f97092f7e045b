// Package config defines the persisted cytraco configuration and the
// TOML-backed store that loads and saves it.
//
// A [Config] carries the rider's functional threshold power and, once a
// trainer has been paired, the trainer's BLE address. [FileStore] is the
// durable Configuration Store consumed by the bootstrap orchestrator.
package config
