// Package models defines the core domain models for Ventory.
//
// # Models
//
//   - Item: a single inventory record, owned by the account that created it
//   - Blog: a write-once blog post, same ownership rule as Item
//   - User: a registered account (persisted only in password mode)
//   - Summary: aggregate statistics over the item collection
//
// # Design Principles
//
//  1. **Server-stamped ownership**: any model with an OwnerEmail field gets it
//     from the verified token claim, never from client input
//  2. **Store-assigned ids**: Item ids are monotonically increasing integers
//     (descending id equals descending recency); Blog and User ids are UUIDs
//  3. **Avoid circular references**: models reference each other by id/email,
//     never by pointer
package models
