// Package kernel provides shared value objects used across all domain models.
// It currently contains the UUID identifier type that every aggregate and
// entity in the warehouse tracker uses as its primary key.
package kernel
