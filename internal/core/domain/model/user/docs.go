// Package user contains the User account entity and the Role enumeration.
package user
