// Package sector splits the customers of an instance into angular sectors
// around the depot. Each sector becomes an independent partition that the
// search layer solves on its own.
//
// Convention:
//
//   - The bearing of a node is atan2(dy, dx) from the depot, in degrees,
//     normalised to [0, 360).
//   - With width w there are k = ceil(360/w) sectors. Sector i covers the
//     half-open arc (i·w, (i+1)·w]; sector 0 additionally owns bearing 0.
//     A bearing that falls exactly on a boundary therefore belongs to the
//     lower-indexed sector. The last sector is narrower when w does not
//     divide 360.
//   - Bearings within 1e-9 sector widths of a boundary are snapped onto
//     it, so axis-aligned points land in the same sector on every platform.
//   - A customer co-located with the depot has bearing 0 and lands in
//     sector 0.
//
// Every partition carries the depot at local index 0; the customers follow
// in ascending global order. Empty sectors are kept, so the result always
// has exactly k partitions and partition i is sector i.
package sector
