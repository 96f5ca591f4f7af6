// Package config manages user-level settings stored at ~/.unitykit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the remote repository URL, the template source, and the Unity editor path.
package config
