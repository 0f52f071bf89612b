// Package ui draws the on-screen controls, notifications and the insight
// modal. The drawing code needs the ebiten build tag; layout and animation
// helpers build everywhere.
package ui
