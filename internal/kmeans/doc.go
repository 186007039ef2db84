// Package kmeans implements deterministic Lloyd k-means clustering over a
// flat float64 vector buffer.
//
// Seeding uses the first k input vectors in order, so identical input always
// produces identical centroids. Used by the centroid facade.
package kmeans
