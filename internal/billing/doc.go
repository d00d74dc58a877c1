// Package billing turns an order, its outlet's invoice settings and an
// optional discount into a payable breakdown.
//
// Everything here is pure: no I/O, no package-level mutable state and no
// errors. Bad input resolves to a defined fallback (empty item list, identity
// currency conversion, no discount) so checkout and printing are never blocked.
// Amounts are carried at full precision and only rounded by Display when they
// are finally printed.
package billing
