// Package services contains domain services: operations that span aggregates
// or hold cross-aggregate state that belongs to no single entity.
//
// EfficiencyClassifier is a pure function object mapping a completed cooking
// duration and an item's configured timing presets to an efficiency tier and
// a relative-performance ratio.
//
// CookingLogCollector is the sink that turns finished menu items into
// immutable cooking log records, enriches them with waiter and delivery data,
// and emits per-waiter delivery records, each exactly once per item.
package services
