// Package product provides the Product entity registered at the first event of
// a warehouse process, together with its value objects.
//
// The package includes:
//   - Product: immutable goods record (name, dimensions, weight, regulations)
//   - Dimensions: validated bounding box in centimeters
//   - Regulations: the six handling flags with display labels
//   - FlowType: the inbound/outbound discriminant copied onto the process
//
// Key business rules:
//   - A product is created once and never mutated or deleted
//   - All dimensions and the weight must be positive
//   - The flow type fixes the event sequence of the owning process
package product
