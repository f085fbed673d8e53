// Package identity implements session establishment, validation, and role
// resolution for the agency management application.
//
// Session lifecycle:
//   - SessionManager owns the single in-process session and its state machine
//     (unauthenticated, restoring, authenticating, authenticated). It restores
//     a persisted token at startup, delegates credential checks to an external
//     AuthGateway, and resolves profile and role grants in the background once
//     an identity is committed.
//   - IdentityContext is the read-only facade the rest of the application
//     consumes: current identity, profile, effective role, loading flag, and
//     the sign-in, sign-up, and sign-out operations.
//
// Role resolution:
//   - A user may hold many role grants. ResolveEffectiveRole reduces them to
//     the single highest-authority role using a fixed priority table; unknown
//     role names are ranked below every canonical role and a user with no
//     grants at all falls back to the baseline employee role.
//
// Tokens:
//   - DecodeToken extracts the embedded claims (subject, email, expiry) from
//     the opaque three-segment bearer token without any network round trip.
//     Claims are decoded without signature verification, matching the trust
//     model of the issuing endpoint; expiry is enforced locally.
package identity
