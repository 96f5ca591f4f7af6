// Package folders creates the default category folder tree under
// Assets/Project for whichever categories are enabled.
package folders
