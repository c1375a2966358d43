// Package models contains GORM persistence models and their conversions to
// and from domain entities. Models never leak outside the persistence layer.
package models
