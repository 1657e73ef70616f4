// Package launcher prepares a Python virtual environment and starts the web
// application in the foreground.
//
// # Sequence
//
//  1. ensure-env         create the venv directory if it is absent
//  2. activate           compute the child environment (VIRTUAL_ENV, PATH)
//  3. upgrade-installer  python -m pip install --upgrade pip
//  4. install-deps       python -m pip install -r <manifest>
//  5. configure          export FLASK_APP and FLASK_ENV
//  6. open-browser       best-effort open of the app URL
//  7. run-app            run the entry point until it exits
//
// The POSIX variant stops at the first failing step, except for the browser
// step whose failure is dropped. The Windows variant reports every failure and
// carries on, returning the joined errors once the app exits.
//
// In native mode the venv steps are skipped and the app is the in-process Go
// server supplied by the caller.
package launcher
