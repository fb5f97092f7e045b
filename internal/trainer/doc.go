// Package trainer discovers BLE smart trainers.
//
// Discovery is filtered to devices advertising the Fitness Machine Service
// (FTMS). [BLEDirectory] is the production Device Directory; it scans for a
// bounded window and probes a known address for reachability by opening and
// closing a connection.
package trainer
