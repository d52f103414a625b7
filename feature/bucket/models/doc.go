// Package models holds the response types of the bucket feature.
package models
