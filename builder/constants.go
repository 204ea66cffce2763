// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// MinPreferentialNodes is the smallest meaningful size for Barabasi-Albert
// preferential attachment growth: a seed clique of size m plus one growth step.
const MinPreferentialNodes = 2
