// Package registry holds the in-memory academic record model.
//
// # Entities
//
//   - Course: a course code plus display name
//   - Student: identity, registered courses and recorded scores
//   - Registry: the owner of every Student and Course
//
// # Ownership
//
// The Registry owns the lifetime of all students and courses. A Student keeps
// non-owning references to the courses it is registered in; a Course may be
// referenced by any number of students.
//
// # Grade invariant
//
// Every graded course of a student must also be a registered course. Student
// has no exported way to write a grade, so Registry.AddOrEditGrade is the only
// path that records a score and the only place the invariant is checked.
//
// The Registry performs no locking. Callers that serve concurrent requests
// must serialize access themselves.
package registry
