/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package apis defines the small public contracts shared by the dresult
// core and its transport adapters.
//
// HTTP, gRPC and logging adapters target these types instead of each other,
// so they can be combined freely. The package only contains interfaces and
// plain value types and must stay free of heavy dependencies; grpc/codes is
// the one exception, since a gRPC status is part of Status.
package apis
