// The config package encapsulates configuration for the seqdiff command.
//
// Configuration lives in a file called 'config' within a base directory;
// when loading the configuration, the argument is the path to the base
// directory rather than the path to the configuration file. The file holds
// one "key value" pair per line. Empty lines and lines starting with '#' are
// ignored. Command line flags take precedence over the values found there.
package config
