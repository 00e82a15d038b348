// Package domain contains the core business entities, value objects, and
// domain logic shared by the demo applications. It represents the heart of
// the system, independent of any specific storage or delivery mechanism.
package domain
