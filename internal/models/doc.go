// Package models defines the core domain models for tutortrack.
//
// # Entities
//
// The tracker keeps four collections, persisted together as one Snapshot:
//   - Student: a tutoring client with an hourly price and a class package balance
//   - Entry: one logged, billable session
//   - ScheduleEntry: a recurring weekly class slot
//   - Note: a free-form reminder
//
// # Design Principles
//
// 1. **Snapshots, not references**: an Entry copies the student's name and hourly
// price at the time it is written. Renaming or deleting a student never rewrites history.
//
// 2. **Plain dates**: Entry dates are local calendar dates in "2006-01-02" form with no
// time zone attached. Schedule times are "15:04" wall-clock strings.
//
// 3. **Stable wire format**: JSON field names match the blob written by earlier versions
// of the app so existing data loads without conversion (see storage.Decode).
//
// 4. **Avoid circular references**: relationships use ID strings instead of pointers.
package models
