package cli

// minimalConfig is the starter configuration written by `create`. Every
// schema key appears with its default so a user can edit in place.
const minimalConfig = `# Sigmond Configuration
[build]
skip_query = false
skip_batch = false
precision = "double"
numbers = "complex"
default_file_format = "hdf5"
enable_minuit = false
enable_grace = false
enable_testing = true
verbose = false
build_jobs = 0             # Number of parallel build jobs (0 = auto-detect)
batch_install_dir = ""     # Custom install directory for sigmond_batch (empty = default bin/)
query_install_dir = ""     # Custom install directory for sigmond_query (empty = default bin/)
extra_cmake_definitions = [] # Additional -D flags passed to CMake
default_ensembles_file = "" # Path to ensembles XML file for DEFAULTENSFILE

[libraries]
# Manual library paths (only specify if auto-detection fails)

[libraries.hdf5]
root_dir = ""              # Directory containing /include and /lib subdirectories
                           # with HDF5 headers and libraries

[libraries.blas]
library_path = ""          # Path to BLAS .so/dylib file (e.g. libopenblas.so)

[libraries.lapack]
library_path = ""          # Path to LAPACK .so/dylib file (e.g. libopenblas.so)

[libraries.accelerate]
framework_dir = ""

[libraries.minuit2]
include_dir = ""            # e.g. /usr/include
library_dir = ""            # e.g. /usr/lib

[libraries.grace]
include_dir = ""
library_dir = ""

[compiler]
c_compiler = ""
cxx_compiler = ""
cxx_flags = []
`
