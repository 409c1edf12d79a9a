// Package steam implements the steam command group: inspectors for Steam
// network enumerations and GlobalIDs.
package steam
